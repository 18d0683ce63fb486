// SPDX-License-Identifier: MIT

package dimension

// Test bridge for the rational tile/repeat arithmetic and the mask records.

// FactorForTest mirrors factor with exported fields.
type FactorForTest struct{ Num, Den int }

// NewFactorForTest normalizes num/den.
func NewFactorForTest(num, den int) FactorForTest {
	f := newFactor(num, den)
	return FactorForTest{Num: f.num, Den: f.den}
}

// ScaleForTest multiplies num/den by k.
func ScaleForTest(num, den, k int) FactorForTest {
	f := newFactor(num, den).scale(k)
	return FactorForTest{Num: f.num, Den: f.den}
}

// TimesForTest returns n·num/den when whole.
func TimesForTest(num, den, n int) (int, bool) {
	return newFactor(num, den).times(n)
}

// RecordsForTest returns (len(mask), tile, repeat) of every record of d.
func RecordsForTest(d *Dimension) [][3]string {
	out := make([][3]string, len(d.records))
	for i, r := range d.records {
		out[i] = [3]string{itoa(len(r.mask)), r.tile.String(), r.repeat.String()}
	}
	return out
}

func itoa(n int) string { return factor{num: n, den: 1}.String() }

// AppendRecordForTest appends a mask record without the checks ApplyExcluder
// performs, so Prepare sees exactly the given mask, tile and repeat.
func AppendRecordForTest(d *Dimension, mask []bool, tileNum, tileDen, repeat int) {
	d.records = append(d.records, maskRecord{
		mask:   mask,
		tile:   newFactor(tileNum, tileDen),
		repeat: newFactor(repeat, 1),
	})
	d.prepared = false
}

// IndexCapsForTest returns the capacities of the forward and reverse index
// lists.
func IndexCapsForTest(d *Dimension) (int, int) {
	return cap(d.indices), cap(d.reverseIndices)
}
