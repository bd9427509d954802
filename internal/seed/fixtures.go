package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/academies.yml
var academyFixtureYAML []byte

// AcademyFixture is one curated academy from the embedded fixture file,
// together with the contact details of its originating inquiry.
type AcademyFixture struct {
	Name         string `yaml:"name"`
	ContactName  string `yaml:"contact_name"`
	ContactEmail string `yaml:"contact_email"`
	ContactPhone string `yaml:"contact_phone"`
	Pitch        string `yaml:"pitch"`
}

// LoadAcademyFixtures parses the embedded academy fixture file.
func LoadAcademyFixtures() ([]AcademyFixture, error) {
	var doc struct {
		Academies []AcademyFixture `yaml:"academies"`
	}
	if err := yaml.Unmarshal(academyFixtureYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse academy fixtures: %w", err)
	}
	if len(doc.Academies) == 0 {
		return nil, fmt.Errorf("academy fixture file is empty")
	}
	return doc.Academies, nil
}
