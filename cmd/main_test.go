package main

import (
	"context"
	"os"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/equiscore/equiscore/internal/app"
	"github.com/equiscore/equiscore/internal/config"
	"github.com/equiscore/equiscore/internal/domain/indicator"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			// Test with environment variables
			_ = os.Setenv("EQUISCORE_ADDR", ":8081")
			_ = os.Setenv("EQUISCORE_MAX_LIST_LIMIT", "25")
			defer func() {
				_ = os.Unsetenv("EQUISCORE_ADDR")
				_ = os.Unsetenv("EQUISCORE_MAX_LIST_LIMIT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8081")
				convey.So(cfg.MaxListLimit, convey.ShouldEqual, 25)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithHistoryPath("custom.db"),
					app.WithMaxListLimit(50),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When building the catalog from config", func() {
			convey.Convey("Then overrides replace the default cuts", func() {
				cfg := config.New()
				cfg.Thresholds = map[string][]float64{
					indicator.Feminization: {45, 40, 35, 30},
				}

				catalog, err := buildCatalog(cfg)
				convey.So(err, convey.ShouldBeNil)

				def, ok := catalog.Get(indicator.Feminization)
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(def.Cuts, convey.ShouldResemble, [4]float64{45, 40, 35, 30})
			})

			convey.Convey("And an unknown indicator key is rejected", func() {
				cfg := config.New()
				cfg.Thresholds = map[string][]float64{"turnover": {1, 2, 3, 4}}

				_, err := buildCatalog(cfg)
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}
