package app

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/equiscore/equiscore/internal/adapters/intake"
	"github.com/equiscore/equiscore/internal/adapters/report"
	"github.com/equiscore/equiscore/internal/adapters/repository"
	"github.com/equiscore/equiscore/internal/domain/grade"
	"github.com/equiscore/equiscore/internal/domain/indicator"
	"github.com/equiscore/equiscore/internal/domain/scorecard"
	"github.com/equiscore/equiscore/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()

	opts = append([]Option{WithHistoryPath(filepath.Join(t.TempDir(), "history.db"))}, opts...)
	svc := New(opts...)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func sampleRequest() scorecard.Request {
	return scorecard.Request{
		Company: "EDF SA",
		Year:    2022,
		Indicators: map[string]float64{
			indicator.Feminization:         30,
			indicator.WomenInManagement:    28,
			indicator.DisabilityEmployment: 5.5,
			indicator.PayGap:               5.0,
			indicator.Absenteeism:          4.2,
		},
		Ages: scorecard.AgeDistribution{Under30: 15, Between30And50: 45, Over50: 40},
	}
}

func TestServiceEvaluate(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := newTestService(t)
		ctx := context.Background()

		Convey("When evaluating a valid request", func() {
			ev, err := svc.Evaluate(ctx, sampleRequest())

			Convey("Then a record is stored with a grade and advice", func() {
				So(err, ShouldBeNil)
				So(ev.Record.ID, ShouldNotBeEmpty)
				So(ev.Record.Company, ShouldEqual, "EDF SA")
				So(ev.Record.Card.AggregateGrade, ShouldEqual, grade.C)
				So(ev.Advice.Conclusion, ShouldNotBeEmpty)

				got, err := svc.Get(ctx, ev.Record.ID)
				So(err, ShouldBeNil)
				So(got.Record.Card.AggregateScore, ShouldEqual, ev.Record.Card.AggregateScore)
			})
		})

		Convey("When evaluating a request with an unknown indicator", func() {
			req := sampleRequest()
			req.Indicators["turnover"] = 12

			_, err := svc.Evaluate(ctx, req)

			Convey("Then the evaluation is rejected", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, indicator.ErrUnknownIndicator), ShouldBeTrue)
			})
		})
	})
}

func TestServiceHistory(t *testing.T) {
	Convey("Given a service with stored evaluations", t, func() {
		svc := newTestService(t)
		ctx := context.Background()

		first, err := svc.Evaluate(ctx, sampleRequest())
		So(err, ShouldBeNil)

		second := sampleRequest()
		second.Company = "Thales"
		_, err = svc.Evaluate(ctx, second)
		So(err, ShouldBeNil)

		Convey("When listing the history", func() {
			summaries, err := svc.List(ctx, 10)

			Convey("Then both evaluations are returned", func() {
				So(err, ShouldBeNil)
				So(summaries, ShouldHaveLength, 2)
			})
		})

		Convey("When fetching an unknown id", func() {
			_, err := svc.Get(ctx, "no-such-id")

			Convey("Then a not found error is returned", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When exporting an evaluation as CSV", func() {
			name, contentType, data, err := svc.Export(ctx, first.Record.ID, report.FormatCSV)

			Convey("Then the CSV payload carries the results", func() {
				So(err, ShouldBeNil)
				So(name, ShouldEqual, "di_report_EDF_SA_2022.csv")
				So(contentType, ShouldContainSubstring, "text/csv")
				So(string(data), ShouldContainSubstring, indicator.Feminization)
			})
		})

		Convey("When exporting with an unknown format", func() {
			_, _, _, err := svc.Export(ctx, first.Record.ID, report.Format("pdf"))

			So(errors.Is(err, report.ErrUnknownFormat), ShouldBeTrue)
		})
	})
}

func TestServiceEvaluateFile(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := newTestService(t)
		ctx := context.Background()

		Convey("When evaluating an uploaded CSV", func() {
			csv := `indicator,value
company,EDF SA
year,2022
feminization,30
women_in_management,28
disability_employment,5.5
pay_gap,5.0
absenteeism,4.2
under_30,15
between_30_50,45
over_50,40
`
			ev, err := svc.EvaluateFile(ctx, strings.NewReader(csv), intake.FormatCSV)

			Convey("Then the file is graded end to end", func() {
				So(err, ShouldBeNil)
				So(ev.Record.Card.AggregateGrade, ShouldEqual, grade.C)
			})
		})

		Convey("When the upload is malformed", func() {
			_, err := svc.EvaluateFile(ctx, strings.NewReader("feminization,abc\n"), intake.FormatCSV)

			So(err, ShouldNotBeNil)
		})
	})
}

func TestServiceTemplate(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := newTestService(t)

		Convey("When requesting the CSV template", func() {
			name, contentType, data, err := svc.Template(intake.FormatCSV)

			So(err, ShouldBeNil)
			So(name, ShouldEqual, "di_indicators_template.csv")
			So(contentType, ShouldContainSubstring, "text/csv")
			So(string(data), ShouldContainSubstring, "feminization")
		})

		Convey("When requesting an unknown template format", func() {
			_, _, _, err := svc.Template(intake.Format("pdf"))

			So(errors.Is(err, intake.ErrUnknownFormat), ShouldBeTrue)
		})
	})
}

func TestServiceStats(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := newTestService(t)

		_, err := svc.Evaluate(context.Background(), sampleRequest())
		So(err, ShouldBeNil)

		Convey("When reading stats", func() {
			stats := svc.GetStats()

			So(stats["started"], ShouldBeTrue)
			So(stats["indicators"], ShouldEqual, 6)
			So(stats["evaluations"], ShouldEqual, 1)
		})
	})
}
