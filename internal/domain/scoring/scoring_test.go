package scoring_test

import (
	"testing"

	"github.com/karium/laurel/internal/domain/scoring"
	"github.com/karium/laurel/internal/domain/taxonomy"
	. "github.com/smartystreets/goconvey/convey"
)

func mustTaxonomy(cats []taxonomy.Category) *taxonomy.Taxonomy {
	t, err := taxonomy.New(cats)
	if err != nil {
		panic(err)
	}
	return t
}

func TestScore(t *testing.T) {
	Convey("Given a category with keywords and phrases", t, func() {
		tax := mustTaxonomy([]taxonomy.Category{{
			Key:       "leadership",
			Name:      "Leadership",
			Threshold: 1,
			Keywords:  []string{"leadership", "global"},
			Phrases:   []string{"global leadership"},
			Criteria:  []string{"Lead with Purpose"},
		}})
		cat := tax.Categories()[0]
		scorer := scoring.New()

		Convey("When the text hits two keywords", func() {
			got := scorer.Score("global leadership program", cat)

			Convey("Then each whole-word hit contributes the keyword weight", func() {
				// "global" and "leadership" score 1.0 each, plus the phrase
				// "global leadership" at 2.0.
				So(got.Score, ShouldEqual, 4.0)
				So(got.Confidence, ShouldEqual, 0.4)
				So(got.MatchedKeywords, ShouldResemble, []string{"leadership", "global"})
				So(got.MatchedPhrases, ShouldResemble, []string{"global leadership"})
			})
		})

		Convey("When a keyword appears as a substring only", func() {
			got := scorer.Score("globalization efforts", cat)

			Convey("Then word boundaries prevent the match", func() {
				So(got.Score, ShouldEqual, 0)
				So(got.MatchedKeywords, ShouldBeNil)
			})
		})

		Convey("When a keyword repeats", func() {
			got := scorer.Score("global reach and global vision", cat)

			Convey("Then every occurrence counts", func() {
				So(got.Score, ShouldEqual, 2.0)
				So(got.MatchedKeywords, ShouldResemble, []string{"global"})
			})
		})

		Convey("When the text is empty", func() {
			got := scorer.Score("", cat)

			Convey("Then everything is zero", func() {
				So(got.Key, ShouldEqual, "leadership")
				So(got.Score, ShouldEqual, 0)
				So(got.Confidence, ShouldEqual, 0)
			})
		})

		Convey("When the text matches nothing", func() {
			got := scorer.Score("sprint planning notes", cat)
			So(got.Score, ShouldEqual, 0)
			So(got.Confidence, ShouldEqual, 0)
		})

		Convey("When the score exceeds the confidence divisor", func() {
			text := ""
			for i := 0; i < 12; i++ {
				text += "global "
			}
			got := scorer.Score(text, cat)

			Convey("Then confidence caps at 1.0", func() {
				So(got.Score, ShouldEqual, 12.0)
				So(got.Confidence, ShouldEqual, 1.0)
			})
		})

		Convey("When scoring the same text twice", func() {
			a := scorer.Score("global leadership program", cat)
			b := scorer.Score("global leadership program", cat)

			Convey("Then results are identical", func() {
				So(a, ShouldResemble, b)
			})
		})
	})

	Convey("Given custom weights", t, func() {
		tax := mustTaxonomy([]taxonomy.Category{{
			Key:       "c",
			Name:      "C",
			Threshold: 1,
			Keywords:  []string{"alpha"},
			Phrases:   []string{"alpha beta"},
		}})
		cat := tax.Categories()[0]
		scorer := scoring.New(scoring.WithKeywordWeight(3), scoring.WithPhraseWeight(4))

		Convey("When scoring text with one keyword and one phrase hit", func() {
			got := scorer.Score("alpha beta", cat)

			Convey("Then the phrase weight multiplies the keyword weight", func() {
				// keyword 3.0 + phrase 3.0*4 = 15.0
				So(got.Score, ShouldEqual, 15.0)
			})
		})
	})
}
