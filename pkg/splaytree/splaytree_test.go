package splaytree_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/algokit/pkg/cmp"
	"github.com/flier/algokit/pkg/splaytree"
)

func TestTree(t *testing.T) {
	Convey("splay tree", t, func() {
		tr := splaytree.New[int, string](cmp.Natural[int]())

		Convey("put then get returns the same key", func() {
			for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0} {
				tr.Put(k, "v")
			}
			So(tr.Len(), ShouldEqual, 10)
			So(tr.CheckInvariants(), ShouldBeTrue)

			for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0} {
				_, ok := tr.Get(k)
				So(ok, ShouldBeTrue)
			}
		})

		Convey("min/max/floor/ceiling", func() {
			for _, k := range []int{10, 20, 30} {
				tr.Put(k, "")
			}
			So(tr.Min().Unwrap(), ShouldEqual, 10)
			So(tr.Max().Unwrap(), ShouldEqual, 30)
			So(tr.Floor(25).Unwrap(), ShouldEqual, 20)
			So(tr.Ceiling(25).Unwrap(), ShouldEqual, 30)
			So(tr.CheckInvariants(), ShouldBeTrue)
		})

		Convey("delete removes a key and keeps a valid BST", func() {
			for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6, 0} {
				tr.Put(k, "")
			}
			So(tr.Delete(5), ShouldBeTrue)
			So(tr.Contains(5), ShouldBeFalse)
			So(tr.CheckInvariants(), ShouldBeTrue)
			So(tr.Delete(999), ShouldBeFalse)
		})

		Convey("range returns an ascending sub-sequence", func() {
			for _, k := range []int{1, 2, 3, 4, 5, 6, 7} {
				tr.Put(k, "")
			}
			entries := tr.Range(3, 5)
			So(len(entries), ShouldEqual, 3)
		})
	})
}
