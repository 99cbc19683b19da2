package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/karium/laurel/internal/adapters/repository"
	"github.com/karium/laurel/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func testItem(i int) repository.StoredItem {
	kind := model.KindDocument
	if i%2 == 1 {
		kind = model.KindEvent
	}
	return repository.StoredItem{
		ExternalID: fmt.Sprintf("item-%d", i),
		Kind:       kind,
		Title:      fmt.Sprintf("Title %d", i),
		Text:       fmt.Sprintf("text body %d", i),
		ReceivedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestMemoryArchive(t *testing.T) {
	Convey("Given an in-memory archive", t, func() {
		ctx := context.Background()
		archive := repository.NewMemoryArchive()

		Convey("When appending items", func() {
			for i := 0; i < 3; i++ {
				So(archive.Append(ctx, testItem(i)), ShouldBeNil)
			}

			Convey("Then All returns them in insertion order", func() {
				items, err := archive.All(ctx)
				So(err, ShouldBeNil)
				So(items, ShouldHaveLength, 3)
				So(items[0].ExternalID, ShouldEqual, "item-0")
				So(items[2].ExternalID, ShouldEqual, "item-2")
				So(archive.Len(ctx), ShouldEqual, 3)
			})

			Convey("And mutating the returned slice does not affect the archive", func() {
				items, err := archive.All(ctx)
				So(err, ShouldBeNil)
				items[0].ExternalID = "mutated"

				again, err := archive.All(ctx)
				So(err, ShouldBeNil)
				So(again[0].ExternalID, ShouldEqual, "item-0")
			})
		})

		Convey("When the archive is empty", func() {
			items, err := archive.All(ctx)
			So(err, ShouldBeNil)
			So(items, ShouldBeEmpty)
			So(archive.Len(ctx), ShouldEqual, 0)
		})

		Convey("When closing", func() {
			So(archive.Close(), ShouldBeNil)
		})
	})
}

func TestSQLiteArchive(t *testing.T) {
	Convey("Given a SQLite archive on a temp file", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "items.db")

		archive, err := repository.NewSQLiteArchive(path)
		So(err, ShouldBeNil)

		Convey("When appending and reading back", func() {
			want := testItem(0)
			So(archive.Append(ctx, want), ShouldBeNil)
			So(archive.Append(ctx, testItem(1)), ShouldBeNil)

			items, err := archive.All(ctx)
			So(err, ShouldBeNil)

			Convey("Then the rows round-trip in insertion order", func() {
				So(items, ShouldHaveLength, 2)
				So(items[0].ExternalID, ShouldEqual, want.ExternalID)
				So(items[0].Kind, ShouldEqual, want.Kind)
				So(items[0].Title, ShouldEqual, want.Title)
				So(items[0].Text, ShouldEqual, want.Text)
				So(items[0].ReceivedAt.Equal(want.ReceivedAt), ShouldBeTrue)
				So(archive.Len(ctx), ShouldEqual, 2)
			})

			So(archive.Close(), ShouldBeNil)
		})

		Convey("When reopening the same file", func() {
			So(archive.Append(ctx, testItem(0)), ShouldBeNil)
			So(archive.Close(), ShouldBeNil)

			reopened, err := repository.NewSQLiteArchive(path)
			So(err, ShouldBeNil)
			defer reopened.Close()

			Convey("Then previously stored items survive", func() {
				items, err := reopened.All(ctx)
				So(err, ShouldBeNil)
				So(items, ShouldHaveLength, 1)
				So(items[0].ExternalID, ShouldEqual, "item-0")
			})
		})
	})
}
