package random_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/okian/champions/internal/domain/random"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSequence(t *testing.T) {
	Convey("Given a fixed sequence source", t, func() {
		src := random.Sequence(0.1, 0.5, 0.9)

		Convey("Then it should replay the values in order and wrap", func() {
			So(src.Float64(), ShouldEqual, 0.1)
			So(src.Float64(), ShouldEqual, 0.5)
			So(src.Float64(), ShouldEqual, 0.9)
			So(src.Float64(), ShouldEqual, 0.1)
		})
	})

	Convey("Given out-of-range values", t, func() {
		src := random.Sequence(-3, 1, 7)

		Convey("Then they should be clamped into [0, 1)", func() {
			So(src.Float64(), ShouldEqual, 0.0)
			So(src.Float64(), ShouldBeLessThan, 1)
			So(src.Float64(), ShouldBeLessThan, 1)
		})
	})

	Convey("Given an empty sequence", t, func() {
		src := random.Sequence()

		Convey("Then it should always yield zero", func() {
			So(src.Float64(), ShouldEqual, 0.0)
			So(src.Float64(), ShouldEqual, 0.0)
		})
	})
}

func TestNew(t *testing.T) {
	Convey("Given two sources with the same seed", t, func() {
		a := random.New(7)
		b := random.New(7)

		Convey("Then they should produce identical draws", func() {
			for i := 0; i < 20; i++ {
				So(a.Float64(), ShouldEqual, b.Float64())
			}
		})
	})

	Convey("Given a shared source used concurrently", t, func() {
		src := random.New(0)
		var wg sync.WaitGroup
		out := make(chan float64, 400)
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 50; i++ {
					out <- src.Float64()
				}
			}()
		}
		wg.Wait()
		close(out)

		Convey("Then every draw should stay in [0, 1)", func() {
			for v := range out {
				So(v, ShouldBeGreaterThanOrEqualTo, 0)
				So(v, ShouldBeLessThan, 1)
			}
		})
	})
}

func TestHelpers(t *testing.T) {
	Convey("Given the draw helpers", t, func() {
		Convey("When drawing uniform floats", func() {
			So(random.Uniform(random.Sequence(0), 10, 35), ShouldEqual, 10.0)
			So(random.Uniform(random.Sequence(0.5), 10, 30), ShouldEqual, 20.0)
		})

		Convey("When drawing inclusive integers", func() {
			So(random.IntBetween(random.Sequence(0), 70, 95), ShouldEqual, 70)
			So(random.IntBetween(random.Sequence(0.999999), 70, 95), ShouldEqual, 95)
			So(random.IntBetween(random.Sequence(0.5), 3, 3), ShouldEqual, 3)

			rng := rand.New(rand.NewSource(1))
			for i := 0; i < 1000; i++ {
				n := random.IntBetween(rng, 0, 3)
				So(n >= 0 && n <= 3, ShouldBeTrue)
			}
		})

		Convey("When choosing from a list", func() {
			items := []string{"positive", "stable", "declining"}
			So(random.Choice(random.Sequence(0), items), ShouldEqual, "positive")
			So(random.Choice(random.Sequence(0.5), items), ShouldEqual, "stable")
			So(random.Choice(random.Sequence(0.99), items), ShouldEqual, "declining")
		})

		Convey("When rounding to one decimal", func() {
			So(random.Round1(12.34), ShouldEqual, 12.3)
			So(random.Round1(-1.26), ShouldEqual, -1.3)
		})
	})
}
