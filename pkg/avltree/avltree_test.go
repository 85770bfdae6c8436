package avltree_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/algokit/pkg/avltree"
	"github.com/flier/algokit/pkg/cmp"
)

func TestTree(t *testing.T) {
	Convey("AVL tree", t, func() {
		tr := avltree.New[int, string](cmp.Natural[int]())

		Convey("a fresh tree is empty", func() {
			So(tr.IsEmpty(), ShouldBeTrue)
			So(tr.Len(), ShouldEqual, 0)
			So(tr.Min().IsNone(), ShouldBeTrue)
		})

		Convey("put then get returns the same key", func() {
			for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0} {
				tr.Put(k, k*10)
			}

			So(tr.Len(), ShouldEqual, 10)
			So(tr.CheckInvariants(), ShouldBeTrue)

			for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0} {
				v, ok := tr.Get(k)
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, k*10)
			}

			min := tr.Min()
			So(min.IsSome(), ShouldBeTrue)
			So(min.Unwrap(), ShouldEqual, 0)

			max := tr.Max()
			So(max.IsSome(), ShouldBeTrue)
			So(max.Unwrap(), ShouldEqual, 9)
		})

		Convey("rank and select are mutual inverses", func() {
			for _, k := range []int{10, 20, 30, 40, 50} {
				tr.Put(k, 0)
			}
			for r := 0; r < tr.Len(); r++ {
				sel := tr.Select(r)
				So(sel.IsSome(), ShouldBeTrue)
				So(tr.Rank(sel.Unwrap()), ShouldEqual, r)
			}
		})

		Convey("floor and ceiling bracket a missing key", func() {
			for _, k := range []int{10, 20, 30} {
				tr.Put(k, 0)
			}
			So(tr.Floor(25).Unwrap(), ShouldEqual, 20)
			So(tr.Ceiling(25).Unwrap(), ShouldEqual, 30)
		})

		Convey("range returns an ascending sub-sequence", func() {
			for _, k := range []int{1, 2, 3, 4, 5, 6, 7} {
				tr.Put(k, 0)
			}
			entries := tr.Range(3, 5)
			So(len(entries), ShouldEqual, 3)
			So(entries[0].Key, ShouldEqual, 3)
			So(entries[2].Key, ShouldEqual, 5)
		})

		Convey("delete removes a key and preserves invariants", func() {
			for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0} {
				tr.Put(k, 0)
			}
			So(tr.Delete(5), ShouldBeTrue)
			So(tr.Contains(5), ShouldBeFalse)
			So(tr.CheckInvariants(), ShouldBeTrue)
			So(tr.Delete(999), ShouldBeFalse)
		})
	})
}
