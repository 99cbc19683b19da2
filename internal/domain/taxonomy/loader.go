package taxonomy

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// fileSchema mirrors the YAML taxonomy file layout:
//
//	categories:
//	  - key: leadership
//	    name: ...
//	    keywords: [...]
//	    phrases: [...]
//	    criteria: [...]
//	    threshold: 3
type fileSchema struct {
	Categories []Category `koanf:"categories"`
}

// LoadFile reads a custom taxonomy from a YAML file. The result goes through
// the same validation and pattern compilation as the built-in set.
func LoadFile(path string) (*Taxonomy, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadTaxonomy, err)
	}
	var schema fileSchema
	if err := k.UnmarshalWithConf("", &schema, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadTaxonomy, err)
	}
	return New(schema.Categories)
}
