package taxonomy_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/karium/laurel/internal/domain/taxonomy"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given category definitions", t, func() {
		valid := []taxonomy.Category{
			{Key: "a", Name: "Award A", Threshold: 1, Keywords: []string{"alpha"}},
			{Key: "b", Name: "Award B", Threshold: 2, Keywords: []string{"beta"}},
		}

		Convey("When the definitions are valid", func() {
			tax, err := taxonomy.New(valid)

			Convey("Then the taxonomy preserves declaration order", func() {
				So(err, ShouldBeNil)
				So(tax.Len(), ShouldEqual, 2)
				So(tax.Categories()[0].Key, ShouldEqual, "a")
				So(tax.Categories()[1].Key, ShouldEqual, "b")
			})

			Convey("And patterns are compiled per keyword", func() {
				So(tax.Categories()[0].KeywordPatterns(), ShouldHaveLength, 1)
			})
		})

		Convey("When the list is empty", func() {
			_, err := taxonomy.New(nil)
			So(errors.Is(err, taxonomy.ErrInvalidCategory), ShouldBeTrue)
		})

		Convey("When a key is duplicated", func() {
			_, err := taxonomy.New([]taxonomy.Category{
				{Key: "a", Name: "One", Threshold: 1},
				{Key: "a", Name: "Two", Threshold: 1},
			})
			So(errors.Is(err, taxonomy.ErrInvalidCategory), ShouldBeTrue)
		})

		Convey("When a key is blank", func() {
			_, err := taxonomy.New([]taxonomy.Category{{Key: " ", Name: "X", Threshold: 1}})
			So(errors.Is(err, taxonomy.ErrInvalidCategory), ShouldBeTrue)
		})

		Convey("When a name is missing", func() {
			_, err := taxonomy.New([]taxonomy.Category{{Key: "x", Threshold: 1}})
			So(errors.Is(err, taxonomy.ErrInvalidCategory), ShouldBeTrue)
		})

		Convey("When a threshold is negative", func() {
			_, err := taxonomy.New([]taxonomy.Category{{Key: "x", Name: "X", Threshold: -1}})
			So(errors.Is(err, taxonomy.ErrInvalidCategory), ShouldBeTrue)
		})
	})
}

func TestGet(t *testing.T) {
	Convey("Given a taxonomy", t, func() {
		tax, err := taxonomy.New([]taxonomy.Category{
			{Key: "a", Name: "Award A", Threshold: 1},
		})
		So(err, ShouldBeNil)

		Convey("When looking up a known key", func() {
			cat, err := tax.Get("a")
			So(err, ShouldBeNil)
			So(cat.Name, ShouldEqual, "Award A")
		})

		Convey("When looking up an unknown key", func() {
			_, err := tax.Get("missing")
			So(errors.Is(err, taxonomy.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestDefault(t *testing.T) {
	Convey("Given the built-in taxonomy", t, func() {
		tax := taxonomy.Default()

		Convey("Then it has the five award categories in order", func() {
			So(tax.Len(), ShouldEqual, 5)
			keys := make([]string, 0, tax.Len())
			for _, c := range tax.Categories() {
				keys = append(keys, c.Key)
			}
			So(keys, ShouldResemble, []string{"leadership", "education", "emerging", "regional", "citizenship"})
		})

		Convey("Then the leadership award needs three items", func() {
			cat, err := tax.Get("leadership")
			So(err, ShouldBeNil)
			So(cat.Threshold, ShouldEqual, 3)
			So(cat.Criteria, ShouldHaveLength, 5)
		})

		Convey("Then every category has compiled vocabulary", func() {
			for _, c := range tax.Categories() {
				So(c.KeywordPatterns(), ShouldHaveLength, len(c.Keywords))
				So(c.PhrasePatterns(), ShouldHaveLength, len(c.Phrases))
				So(c.Threshold, ShouldBeGreaterThan, 0)
			}
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a taxonomy YAML file", t, func() {
		dir := t.TempDir()

		Convey("When the file is well formed", func() {
			path := filepath.Join(dir, "taxonomy.yaml")
			content := `categories:
  - key: service
    name: Community Service Award
    threshold: 2
    keywords:
      - volunteer
      - charity
    phrases:
      - community service
    criteria:
      - Giving Back
`
			So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)

			tax, err := taxonomy.LoadFile(path)

			Convey("Then the categories load with compiled patterns", func() {
				So(err, ShouldBeNil)
				So(tax.Len(), ShouldEqual, 1)
				cat, err := tax.Get("service")
				So(err, ShouldBeNil)
				So(cat.Name, ShouldEqual, "Community Service Award")
				So(cat.Threshold, ShouldEqual, 2)
				So(cat.KeywordPatterns(), ShouldHaveLength, 2)
			})
		})

		Convey("When the file does not exist", func() {
			_, err := taxonomy.LoadFile(filepath.Join(dir, "missing.yaml"))
			So(errors.Is(err, taxonomy.ErrLoadTaxonomy), ShouldBeTrue)
		})

		Convey("When the file fails validation", func() {
			path := filepath.Join(dir, "bad.yaml")
			content := `categories:
  - key: ""
    name: Broken
`
			So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)

			_, err := taxonomy.LoadFile(path)
			So(errors.Is(err, taxonomy.ErrInvalidCategory), ShouldBeTrue)
		})
	})
}
