package scorecard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/equiscore/equiscore/internal/domain/grade"
	"github.com/equiscore/equiscore/internal/domain/indicator"
	"github.com/equiscore/equiscore/internal/domain/scorecard"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleRequest() scorecard.Request {
	return scorecard.Request{
		Company: "EDF SA",
		Year:    2022,
		Indicators: map[string]float64{
			indicator.Feminization:         30.0,
			indicator.WomenInManagement:    28.0,
			indicator.DisabilityEmployment: 5.5,
			indicator.PayGap:               5.0,
			indicator.Absenteeism:          4.2,
		},
		Ages: scorecard.AgeDistribution{Under30: 15, Between30And50: 45, Over50: 40},
	}
}

func TestEvaluate(t *testing.T) {
	Convey("Given an evaluator with the default catalog", t, func() {
		evaluator := scorecard.NewEvaluator()
		ctx := context.Background()

		Convey("When evaluating a complete request", func() {
			card, err := evaluator.Evaluate(ctx, sampleRequest())

			Convey("Then it produces six lines in catalog order", func() {
				So(err, ShouldBeNil)
				So(card.Lines, ShouldHaveLength, 6)
				So(card.Lines[0].Key, ShouldEqual, indicator.Feminization)
				So(card.Lines[4].Key, ShouldEqual, indicator.AgeBalance)
				So(card.Company, ShouldEqual, "EDF SA")
				So(card.Year, ShouldEqual, 2022)
			})

			Convey("Then each line carries the expected grade", func() {
				So(err, ShouldBeNil)
				grades := card.Grades()
				So(grades[indicator.Feminization], ShouldEqual, grade.C)         // 30 on [40,35,30,25]
				So(grades[indicator.WomenInManagement], ShouldEqual, grade.C)    // 28 on [35,30,25,20]
				So(grades[indicator.DisabilityEmployment], ShouldEqual, grade.B) // 5.5 on [6,5,4,3]
				So(grades[indicator.PayGap], ShouldEqual, grade.C)               // 5 on [2,4,8,12] down
				So(grades[indicator.Absenteeism], ShouldEqual, grade.C)          // 4.2 on [2.5,3.5,4.5,5.5] down
			})

			Convey("Then the age balance line is derived from the raw brackets", func() {
				So(err, ShouldBeNil)
				var ageLine scorecard.Line
				for _, l := range card.Lines {
					if l.Key == indicator.AgeBalance {
						ageLine = l
					}
				}
				So(ageLine.Value, ShouldAlmostEqual, 81.664, 0.01)
				So(ageLine.Grade, ShouldEqual, grade.B) // on [85,75,65,55]
			})

			Convey("Then the aggregate is the mean of the six grade points", func() {
				So(err, ShouldBeNil)
				// C,C,B,C,B,C -> (3+3+4+3+4+3)/6 = 20/6
				So(card.AggregateScore, ShouldAlmostEqual, 20.0/6.0, 1e-9)
				So(card.AggregateGrade, ShouldEqual, grade.C)
			})
		})

		Convey("When the caller supplies age_balance directly", func() {
			req := sampleRequest()
			req.Indicators[indicator.AgeBalance] = 90.0
			card, err := evaluator.Evaluate(ctx, req)

			Convey("Then the supplied value is graded as-is", func() {
				So(err, ShouldBeNil)
				So(card.Grades()[indicator.AgeBalance], ShouldEqual, grade.A)
			})
		})

		Convey("When a value is out of its declared range", func() {
			req := sampleRequest()
			req.Indicators[indicator.PayGap] = 250.0
			req.Indicators[indicator.Feminization] = -10.0
			card, err := evaluator.Evaluate(ctx, req)

			Convey("Then it grades at the extreme end instead of failing", func() {
				So(err, ShouldBeNil)
				So(card.Grades()[indicator.PayGap], ShouldEqual, grade.E)
				So(card.Grades()[indicator.Feminization], ShouldEqual, grade.E)
			})
		})

		Convey("When the request carries an unknown key", func() {
			req := sampleRequest()
			req.Indicators["turnover"] = 12.0
			_, err := evaluator.Evaluate(ctx, req)

			Convey("Then the whole evaluation fails with ErrUnknownIndicator", func() {
				So(errors.Is(err, indicator.ErrUnknownIndicator), ShouldBeTrue)
			})
		})

		Convey("When a required indicator is missing", func() {
			req := sampleRequest()
			delete(req.Indicators, indicator.PayGap)
			_, err := evaluator.Evaluate(ctx, req)

			Convey("Then the whole evaluation fails with ErrMissingIndicator", func() {
				So(errors.Is(err, scorecard.ErrMissingIndicator), ShouldBeTrue)
			})
		})

		Convey("When evaluated twice with the same request", func() {
			first, err1 := evaluator.Evaluate(ctx, sampleRequest())
			second, err2 := evaluator.Evaluate(ctx, sampleRequest())

			Convey("Then the results are identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second, ShouldResemble, first)
			})
		})
	})
}

func TestEvaluateWithAlternateCatalog(t *testing.T) {
	Convey("Given an evaluator with a substituted threshold table", t, func() {
		catalog, err := indicator.Default().WithCuts(indicator.Feminization, [4]float64{20, 15, 10, 5})
		So(err, ShouldBeNil)
		evaluator := scorecard.NewEvaluator(scorecard.WithCatalog(catalog))

		Convey("When evaluating the same request", func() {
			card, err := evaluator.Evaluate(context.Background(), sampleRequest())

			Convey("Then grading follows the injected table, not the default", func() {
				So(err, ShouldBeNil)
				So(card.Grades()[indicator.Feminization], ShouldEqual, grade.A) // 30 >= 20
			})
		})
	})
}

func TestAgeDistribution(t *testing.T) {
	Convey("Given age bracket sums", t, func() {
		Convey("Then a sum within tolerance of 100 is balanced", func() {
			So(scorecard.AgeDistribution{Under30: 33.33, Between30And50: 33.33, Over50: 33.34}.Balanced100(), ShouldBeTrue)
			So(scorecard.AgeDistribution{Under30: 15, Between30And50: 45, Over50: 40}.Balanced100(), ShouldBeTrue)
		})

		Convey("Then a sum off by more than the tolerance is not", func() {
			So(scorecard.AgeDistribution{Under30: 15, Between30And50: 45, Over50: 45}.Balanced100(), ShouldBeFalse)
		})
	})
}
