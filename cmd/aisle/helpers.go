package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/sagekey/aisleflow/internal/category"
	"github.com/sagekey/aisleflow/internal/classifier"
	"github.com/sagekey/aisleflow/internal/layout"
)

// engine bundles the three static registries every command needs.
type engine struct {
	registry   *category.Registry
	classifier *classifier.Classifier
	layouts    *layout.Registry
}

// newEngine builds the registries and classifier from the compiled-in
// tables. Construction validates all cross-references; a failure here means
// the built-in data is broken, not that user input is bad.
func newEngine() (*engine, error) {
	registry, err := category.NewDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to build category registry: %w", err)
	}

	cls, err := classifier.New(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to build classifier: %w", err)
	}

	layouts, err := layout.NewRegistry(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to build layout registry: %w", err)
	}

	return &engine{registry: registry, classifier: cls, layouts: layouts}, nil
}

// resolveStore returns the store name and chain, preferring flags over the
// persisted preference in config.
func resolveStore(storeFlag, chainFlag string) (name, chain string) {
	name = storeFlag
	if name == "" {
		name = viper.GetString("store.name")
	}
	chain = chainFlag
	if chain == "" {
		chain = viper.GetString("store.chain")
	}
	return name, chain
}
