package errgroup

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGroup_Go(t *testing.T) {
	Convey("Using errgroup.Go", t, func() {
		Convey("It should recover panic as error", func() {
			wg, _ := WithContext(context.TODO())
			for i := 0; i < 100; i++ {
				wg.Go(func() error {
					panic("hi")
				})
			}
			So(wg.Wait(), ShouldNotBeNil)
		})

		Convey("It should propagate the first error and cancel the context", func() {
			wg, ctx := WithContext(context.TODO())
			boom := errors.New("boom")
			wg.Go(func() error { return boom })
			wg.Go(func() error {
				<-ctx.Done()
				return nil
			})
			So(wg.Wait(), ShouldEqual, boom)
			So(ctx.Err(), ShouldNotBeNil)
		})

		Convey("It should return nil when all tasks succeed", func() {
			wg, _ := WithContext(context.TODO())
			for i := 0; i < 10; i++ {
				wg.Go(func() error { return nil })
			}
			So(wg.Wait(), ShouldBeNil)
		})
	})
}
