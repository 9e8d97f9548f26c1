package poly

// reciprocalFactorialSize makes the table cover rf[0..170]; 170! is the
// largest factorial that is finite in float64. The kernel's series read
// only the first couple dozen entries.
const reciprocalFactorialSize = 171

// reciprocalFactorial holds rf[n] = 1/n!, populated once at package init by
// the pure recurrence rf[0]=1, rf[n]=rf[n-1]/n. Every series expansion in
// this package reads from this table rather than calling into a general
// gamma or factorial routine, so that results are bitwise reproducible
// across runs and platforms.
var reciprocalFactorial [reciprocalFactorialSize]float64

func init() {
	reciprocalFactorial[0] = 1.0
	for n := 1; n < reciprocalFactorialSize; n++ {
		reciprocalFactorial[n] = reciprocalFactorial[n-1] / float64(n)
	}
}
