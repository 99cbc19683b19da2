package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/karium/laurel/internal/adapters/http/api"
	"github.com/karium/laurel/internal/domain/model"
	"github.com/karium/laurel/internal/domain/taxonomy"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeDeps implements api.Dependencies with controllable behavior.
type fakeDeps struct {
	tax *taxonomy.Taxonomy

	seen        map[string]bool
	enqueueOK   bool
	enqueued    []model.ContentItem
	resetCalled bool
	reloadErr   error
}

func newFakeDeps() *fakeDeps {
	tax, err := taxonomy.New([]taxonomy.Category{
		{
			Key:       "leadership",
			Name:      "Leadership Award",
			Threshold: 1,
			Keywords:  []string{"leadership", "global"},
			Criteria:  []string{"Lead with Purpose"},
		},
	})
	if err != nil {
		panic(err)
	}
	return &fakeDeps{tax: tax, seen: map[string]bool{}, enqueueOK: true}
}

func (f *fakeDeps) SeenAndRecord(_ context.Context, id string) bool {
	if f.seen[id] {
		return true
	}
	f.seen[id] = true
	return false
}

func (f *fakeDeps) Unrecord(_ context.Context, id string) { delete(f.seen, id) }

func (f *fakeDeps) Enqueue(_ context.Context, item model.ContentItem) bool {
	if !f.enqueueOK {
		return false
	}
	f.enqueued = append(f.enqueued, item)
	return true
}

func (f *fakeDeps) Classify(_ context.Context, text, _ string) model.ClassificationResult {
	result := model.ClassificationResult{
		Scores: map[string]model.CategoryScore{"leadership": {Key: "leadership"}},
		Labels: []model.Label{},
	}
	if strings.Contains(strings.ToLower(text), "leadership") {
		result.BestMatch = "leadership"
		result.BestName = "Leadership Award"
		result.Confidence = 0.3
		result.Labels = append(result.Labels, model.Label{Key: "leadership", Name: "Leadership Award", Confidence: 0.3})
	}
	return result
}

func (f *fakeDeps) StatusReport(_ context.Context) model.StatusReport {
	return model.StatusReport{
		Summary: model.ReportSummary{TotalAwards: 1},
		Awards: []model.AwardStatus{
			{Key: "leadership", Name: "Leadership Award"},
		},
		Recommendations: []model.Recommendation{},
	}
}

func (f *fakeDeps) Award(_ context.Context, key string) (model.AwardStatus, error) {
	cat, err := f.tax.Get(key)
	if err != nil {
		return model.AwardStatus{}, err
	}
	return model.AwardStatus{Key: cat.Key, Name: cat.Name}, nil
}

func (f *fakeDeps) Taxonomy() *taxonomy.Taxonomy { return f.tax }

func (f *fakeDeps) Reset(_ context.Context) error { f.resetCalled = true; return nil }

func (f *fakeDeps) Reload(_ context.Context) error { return f.reloadErr }

func (f *fakeDeps) Stats() map[string]any { return map[string]any{"started": true} }

func newTestServer(deps api.Dependencies) *httptest.Server {
	mux := http.NewServeMux()
	api.NewServer(deps, 1<<20).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	return resp
}

func TestPostItems(t *testing.T) {
	Convey("Given the items endpoint", t, func() {
		deps := newFakeDeps()
		srv := newTestServer(deps)
		defer srv.Close()

		valid := map[string]string{
			"external_id": "item-1",
			"kind":        "document",
			"text":        "leadership evidence",
		}

		Convey("When posting a valid item", func() {
			resp := postJSON(t, srv.URL+"/items", valid)
			defer resp.Body.Close()

			Convey("Then it is accepted and enqueued", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusAccepted)
				var ack struct {
					Status    string `json:"status"`
					ItemID    string `json:"item_id"`
					Duplicate bool   `json:"duplicate"`
				}
				So(json.NewDecoder(resp.Body).Decode(&ack), ShouldBeNil)
				So(ack.Status, ShouldEqual, "accepted")
				So(ack.ItemID, ShouldEqual, "item-1")
				So(ack.Duplicate, ShouldBeFalse)
				So(deps.enqueued, ShouldHaveLength, 1)
				So(deps.enqueued[0].Kind, ShouldEqual, model.KindDocument)
			})
		})

		Convey("When posting the same item twice", func() {
			resp1 := postJSON(t, srv.URL+"/items", valid)
			resp1.Body.Close()
			resp2 := postJSON(t, srv.URL+"/items", valid)
			defer resp2.Body.Close()

			Convey("Then the duplicate gets 200 and is not enqueued again", func() {
				So(resp2.StatusCode, ShouldEqual, http.StatusOK)
				var ack struct {
					Duplicate bool `json:"duplicate"`
				}
				So(json.NewDecoder(resp2.Body).Decode(&ack), ShouldBeNil)
				So(ack.Duplicate, ShouldBeTrue)
				So(deps.enqueued, ShouldHaveLength, 1)
			})
		})

		Convey("When posting without an external ID", func() {
			noID := map[string]string{"kind": "event", "text": "some evidence"}
			resp1 := postJSON(t, srv.URL+"/items", noID)
			resp1.Body.Close()
			resp2 := postJSON(t, srv.URL+"/items", noID)
			defer resp2.Body.Close()

			Convey("Then identical content is still deduplicated", func() {
				So(resp1.StatusCode, ShouldEqual, http.StatusAccepted)
				So(resp2.StatusCode, ShouldEqual, http.StatusOK)
				So(deps.enqueued, ShouldHaveLength, 1)
			})
		})

		Convey("When the kind is invalid", func() {
			resp := postJSON(t, srv.URL+"/items", map[string]string{"kind": "webinar", "text": "x"})
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the text is empty", func() {
			// An upstream extraction failure arrives with no text; it must
			// be accepted as zero evidence, not rejected.
			resp := postJSON(t, srv.URL+"/items", map[string]string{"kind": "document", "external_id": "empty-1"})
			defer resp.Body.Close()

			Convey("Then it is still accepted and enqueued", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusAccepted)
				So(deps.enqueued, ShouldHaveLength, 1)
				So(deps.enqueued[0].Text, ShouldBeEmpty)
			})
		})

		Convey("When the body is not JSON", func() {
			resp, err := http.Post(srv.URL+"/items", "application/json", strings.NewReader("{nope"))
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the queue applies backpressure", func() {
			deps.enqueueOK = false
			resp := postJSON(t, srv.URL+"/items", valid)
			defer resp.Body.Close()

			Convey("Then the client gets 429 and the ID is rolled back", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusTooManyRequests)
				So(deps.seen["item-1"], ShouldBeFalse)
			})
		})

		Convey("When using the wrong method", func() {
			resp, err := http.Get(srv.URL + "/items")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestClassifyEndpoint(t *testing.T) {
	Convey("Given the classify endpoint", t, func() {
		deps := newFakeDeps()
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When posting matching text", func() {
			resp := postJSON(t, srv.URL+"/classify", map[string]string{"text": "leadership program"})
			defer resp.Body.Close()

			Convey("Then the classification is returned", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var result model.ClassificationResult
				So(json.NewDecoder(resp.Body).Decode(&result), ShouldBeNil)
				So(result.BestMatch, ShouldEqual, "leadership")
			})
		})

		Convey("When the text is empty", func() {
			resp := postJSON(t, srv.URL+"/classify", map[string]string{"text": ""})
			defer resp.Body.Close()

			Convey("Then the classification comes back with no best match", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var result model.ClassificationResult
				So(json.NewDecoder(resp.Body).Decode(&result), ShouldBeNil)
				So(result.BestMatch, ShouldBeEmpty)
				So(result.Labels, ShouldBeEmpty)
			})
		})
	})
}

func TestReportAndAwards(t *testing.T) {
	Convey("Given the read endpoints", t, func() {
		deps := newFakeDeps()
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When fetching the report", func() {
			resp, err := http.Get(srv.URL + "/report")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the status report is returned", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var report model.StatusReport
				So(json.NewDecoder(resp.Body).Decode(&report), ShouldBeNil)
				So(report.Summary.TotalAwards, ShouldEqual, 1)
				So(report.Awards, ShouldHaveLength, 1)
			})
		})

		Convey("When listing award categories", func() {
			resp, err := http.Get(srv.URL + "/awards")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then categories come back with their criteria", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var cats []struct {
					Key       string   `json:"key"`
					Name      string   `json:"name"`
					Threshold int      `json:"threshold"`
					Criteria  []string `json:"criteria"`
				}
				So(json.NewDecoder(resp.Body).Decode(&cats), ShouldBeNil)
				So(cats, ShouldHaveLength, 1)
				So(cats[0].Key, ShouldEqual, "leadership")
				So(cats[0].Criteria, ShouldResemble, []string{"Lead with Purpose"})
			})
		})

		Convey("When fetching a single award", func() {
			resp, err := http.Get(srv.URL + "/awards/leadership")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			var st model.AwardStatus
			So(json.NewDecoder(resp.Body).Decode(&st), ShouldBeNil)
			So(st.Key, ShouldEqual, "leadership")
		})

		Convey("When fetching an unknown award", func() {
			resp, err := http.Get(srv.URL + "/awards/missing")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the award key has extra path segments", func() {
			resp, err := http.Get(srv.URL + "/awards/a/b")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestAdminEndpoints(t *testing.T) {
	Convey("Given the admin endpoints", t, func() {
		deps := newFakeDeps()
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When posting to reset", func() {
			resp := postJSON(t, srv.URL+"/reset", struct{}{})
			defer resp.Body.Close()

			Convey("Then state is reset with no content returned", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNoContent)
				So(deps.resetCalled, ShouldBeTrue)
			})
		})

		Convey("When posting to reload", func() {
			resp := postJSON(t, srv.URL+"/reload", struct{}{})
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNoContent)
		})

		Convey("When reload fails", func() {
			deps.reloadErr = context.DeadlineExceeded
			resp := postJSON(t, srv.URL+"/reload", struct{}{})
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusInternalServerError)
		})

		Convey("When using GET on an admin endpoint", func() {
			resp, err := http.Get(srv.URL + "/reset")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestStatsEndpoint(t *testing.T) {
	Convey("Given the stats endpoint", t, func() {
		deps := newFakeDeps()
		srv := newTestServer(deps)
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/stats")
		So(err, ShouldBeNil)
		defer resp.Body.Close()

		Convey("Then operational counters are returned as JSON", func() {
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			var stats map[string]any
			So(json.NewDecoder(resp.Body).Decode(&stats), ShouldBeNil)
			So(stats["started"], ShouldEqual, true)
		})
	})
}

func TestHealthEndpoint(t *testing.T) {
	Convey("Given the health endpoint", t, func() {
		deps := newFakeDeps()
		srv := newTestServer(deps)
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/healthz")
		So(err, ShouldBeNil)
		defer resp.Body.Close()

		Convey("Then the metrics registry is served", func() {
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})
	})
}
