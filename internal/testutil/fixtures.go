package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/epeat/internal/domain"
)

var testSectionCounter atomic.Int64

// Item options
type ItemOption func(*domain.Item)

func Required() ItemOption {
	return func(it *domain.Item) {
		it.Required = true
	}
}

func WithItemID(id string) ItemOption {
	return func(it *domain.Item) {
		it.ID = id
	}
}

func WithExample(ex string) ItemOption {
	return func(it *domain.Item) {
		it.Example = ex
	}
}

func NewTestItem(name string, opts ...ItemOption) domain.Item {
	it := domain.Item{Name: name, Description: name + " description"}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

// Section options
type SectionOption func(*domain.Section)

func WithSectionKey(key string) SectionOption {
	return func(s *domain.Section) {
		s.Key = key
	}
}

func WithItems(items ...domain.Item) SectionOption {
	return func(s *domain.Section) {
		s.Items = append(s.Items, items...)
	}
}

func NewTestSection(title string, opts ...SectionOption) domain.Section {
	s := domain.Section{
		Key:   fmt.Sprintf("section%d", testSectionCounter.Add(1)),
		Title: title,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func NewTestCatalog(name string, sections ...domain.Section) domain.Catalog {
	return domain.Catalog{Name: name, Sections: sections}
}

// SmallDocumentation has two sections: "docs" with two items, one
// required, and "extra" with one item. Keys: docs-0, docs-1, extra-0.
func SmallDocumentation() domain.Catalog {
	return NewTestCatalog("Documentation",
		NewTestSection("Docs", WithSectionKey("docs"), WithItems(
			NewTestItem("Declaration", Required()),
			NewTestItem("Test report"),
		)),
		NewTestSection("Extra", WithSectionKey("extra"), WithItems(
			NewTestItem("Brochure"),
		)),
	)
}

// SmallSelfRating has one section "areas" with two items: areas-0, areas-1.
func SmallSelfRating() domain.Catalog {
	return NewTestCatalog("Self Rating",
		NewTestSection("Areas", WithSectionKey("areas"), WithItems(
			NewTestItem("Materials", WithExample("Material inventory")),
			NewTestItem("Energy", WithExample("Power measurements")),
		)),
	)
}

// SmallTracker has two sections with explicit ids; three of four items
// are required.
func SmallTracker() domain.Catalog {
	return NewTestCatalog("Tracker",
		NewTestSection("Preparation", WithSectionKey("prep"), WithItems(
			NewTestItem("Register", WithItemID("register"), Required()),
			NewTestItem("Gather", WithItemID("gather"), Required()),
		)),
		NewTestSection("Submission", WithSectionKey("submit"), WithItems(
			NewTestItem("Upload", WithItemID("upload"), Required()),
			NewTestItem("Review", WithItemID("review")),
		)),
	)
}

// SmallRisks returns two critical risks: "gaps" and "staff".
func SmallRisks() []domain.Risk {
	return []domain.Risk{
		{ID: "gaps", Label: "Testing gaps"},
		{ID: "staff", Label: "Staff shortages"},
	}
}
