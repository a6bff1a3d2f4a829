package agebalance_test

import (
	"testing"

	"github.com/equiscore/equiscore/internal/domain/agebalance"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBalance(t *testing.T) {
	Convey("Given the age balance calculation", t, func() {
		Convey("When the distribution is a near-perfect three-way split", func() {
			score := agebalance.Balance(33.33, 33.33, 33.34)

			Convey("Then the score is approximately 100", func() {
				So(score, ShouldAlmostEqual, 100, 0.01)
			})
		})

		Convey("When one bracket holds the whole workforce", func() {
			score := agebalance.Balance(100, 0, 0)

			Convey("Then deviations 66.67/33.33/33.33 give a score near 33.33", func() {
				// mean deviation 44.443..., normalized by 66.67
				So(score, ShouldAlmostEqual, 33.335, 0.01)
			})

			Convey("And the calculation is symmetric across brackets", func() {
				So(agebalance.Balance(0, 100, 0), ShouldAlmostEqual, score, 1e-9)
				So(agebalance.Balance(0, 0, 100), ShouldAlmostEqual, score, 1e-9)
			})
		})

		Convey("When the distribution is typical for the sector", func() {
			score := agebalance.Balance(15, 45, 40)

			Convey("Then deviations 18.33/11.67/6.67 give a score near 81.66", func() {
				So(score, ShouldAlmostEqual, 81.664, 0.01)
			})
		})

		Convey("When inputs are pathological", func() {
			Convey("Then the result can go negative and is not clamped", func() {
				// Deviations 166.67/133.33/133.33, mean well above the
				// normalization constant.
				score := agebalance.Balance(200, -100, -100)
				So(score, ShouldBeLessThan, 0)
			})

			Convey("Then no error or panic occurs for out-of-range input", func() {
				So(func() { agebalance.Balance(-5, 300, 12) }, ShouldNotPanic)
			})
		})

		Convey("When called repeatedly with the same input", func() {
			Convey("Then the result is identical every time", func() {
				first := agebalance.Balance(20, 50, 30)
				for i := 0; i < 10; i++ {
					So(agebalance.Balance(20, 50, 30), ShouldEqual, first)
				}
			})
		})
	})
}
