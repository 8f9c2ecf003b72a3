package catalog

import (
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/formslot/form"
)

type fileConfig struct {
	FormID     string           `toml:"form_id"`
	Path       string           `toml:"path"`
	Properties []propertyConfig `toml:"property"`
	Fields     []fieldConfig    `toml:"field"`
}

type propertyConfig struct {
	Expression string   `toml:"expression"`
	Label      string   `toml:"label"`
	Types      []string `toml:"types"`
}

type fieldConfig struct {
	Name        string         `toml:"name"`
	Type        string         `toml:"type"`
	Binding     string         `toml:"binding"`
	Label       string         `toml:"label"`
	Placeholder string         `toml:"placeholder"`
	Required    bool           `toml:"required"`
	ReadOnly    bool           `toml:"read_only"`
	Options     []optionConfig `toml:"option"`
}

type optionConfig struct {
	Value string `toml:"value"`
	Text  string `toml:"text"`
}

// Load reads a TOML catalog.
func Load(r io.Reader) (*Catalog, error) {
	var cfg fileConfig
	if err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to decode catalog")
	}
	return build(cfg)
}

// LoadFile reads a TOML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open catalog", goerr.V("path", path))
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load catalog", goerr.V("path", path))
	}
	return c, nil
}

func build(cfg fileConfig) (*Catalog, error) {
	if cfg.FormID == "" {
		return nil, goerr.Wrap(ErrInvalidField, "form_id is required")
	}
	c := New(cfg.FormID, form.Path(cfg.Path))

	for _, p := range cfg.Properties {
		types := make([]form.FieldType, 0, len(p.Types))
		for _, t := range p.Types {
			code := form.FieldType(t)
			if !code.IsValid() {
				return nil, goerr.Wrap(ErrInvalidField, "unknown property type",
					goerr.V("expression", p.Expression), goerr.V("type", t))
			}
			types = append(types, code)
		}
		if err := c.AddProperty(Property{Expression: p.Expression, Label: p.Label, Types: types}); err != nil {
			return nil, err
		}
	}

	for _, f := range cfg.Fields {
		def := &form.Definition{
			Name:              f.Name,
			Code:              form.FieldType(f.Type),
			BindingExpression: f.Binding,
			Label:             f.Label,
			Placeholder:       f.Placeholder,
			Required:          f.Required,
			ReadOnly:          f.ReadOnly,
		}
		for _, o := range f.Options {
			def.Options = append(def.Options, form.Option{Value: o.Value, Text: o.Text})
		}
		if err := c.AddField(def); err != nil {
			return nil, err
		}
	}
	return c, nil
}
