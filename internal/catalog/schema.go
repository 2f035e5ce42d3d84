package catalog

import (
	"os"

	"github.com/alexanderramin/epeat/internal/domain"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a checklist catalog. JSON files parse too,
// since JSON is a subset of YAML.
type File struct {
	Name     string        `yaml:"name" validate:"required"`
	Sections []SectionFile `yaml:"sections" validate:"dive"`
	Risks    []RiskFile    `yaml:"risks,omitempty" validate:"dive"`
}

// SectionFile defines one section of a catalog file.
type SectionFile struct {
	Key         string     `yaml:"key" validate:"required,alphanum,max=64"`
	Title       string     `yaml:"title" validate:"required"`
	Description string     `yaml:"description,omitempty"`
	Items       []ItemFile `yaml:"items" validate:"required,min=1,dive"`
}

// ItemFile defines one checklist item. An empty id falls back to the
// "<section>-<index>" key.
type ItemFile struct {
	ID          string `yaml:"id,omitempty" validate:"omitempty,max=64"`
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description,omitempty"`
	Example     string `yaml:"example,omitempty"`
	Required    bool   `yaml:"required,omitempty"`
}

// RiskFile defines one selectable critical risk.
type RiskFile struct {
	ID    string `yaml:"id" validate:"required,alphanum,max=64"`
	Label string `yaml:"label" validate:"required"`
}

// Load reads and parses a catalog file without validating it.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V("path", path))
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse catalog file", goerr.V("path", path))
	}
	return &f, nil
}

// Catalog converts the file into a domain catalog. Call Validate first.
func (f *File) Catalog() domain.Catalog {
	c := domain.Catalog{Name: f.Name, Sections: make([]domain.Section, 0, len(f.Sections))}
	for _, s := range f.Sections {
		sec := domain.Section{
			Key:         s.Key,
			Title:       s.Title,
			Description: s.Description,
			Items:       make([]domain.Item, 0, len(s.Items)),
		}
		for _, it := range s.Items {
			sec.Items = append(sec.Items, domain.Item{
				ID:          it.ID,
				Name:        it.Name,
				Description: it.Description,
				Example:     it.Example,
				Required:    it.Required,
			})
		}
		c.Sections = append(c.Sections, sec)
	}
	return c
}

// RiskList converts the file's risks into domain risks.
func (f *File) RiskList() []domain.Risk {
	out := make([]domain.Risk, 0, len(f.Risks))
	for _, r := range f.Risks {
		out = append(out, domain.Risk{ID: r.ID, Label: r.Label})
	}
	return out
}

// LoadCatalog loads, validates and converts a catalog file.
// Validation problems are joined into a single error.
func LoadCatalog(path string) (domain.Catalog, error) {
	f, err := Load(path)
	if err != nil {
		return domain.Catalog{}, err
	}
	if errs := Validate(f); len(errs) > 0 {
		return domain.Catalog{}, joinInvalid(path, errs)
	}
	if len(f.Sections) == 0 {
		return domain.Catalog{}, goerr.New("catalog has no sections", goerr.V("path", path))
	}
	return f.Catalog(), nil
}

// LoadRisks loads the risk list from a catalog file.
func LoadRisks(path string) ([]domain.Risk, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	if errs := Validate(f); len(errs) > 0 {
		return nil, joinInvalid(path, errs)
	}
	if len(f.Risks) == 0 {
		return nil, goerr.New("catalog has no risks", goerr.V("path", path))
	}
	return f.RiskList(), nil
}
