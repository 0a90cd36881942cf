package optimizer

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// simplexTol loosens the simplex pivoting checks enough to handle constraint
// coefficients that are monetary amounts (large, non-round mantissas). With
// the exact default tolerance the solver misclassifies such bounded problems
// as unbounded.
const simplexTol = 1e-8

// solveGeneral minimises c·x subject to G·x <= h, with x otherwise free.
// Variable bounds must be encoded as rows of G. The problem is converted to
// standard form and solved with the dense simplex method, which is exact
// enough at this scale (a handful of variables and constraints) and reports
// infeasibility distinctly from numerical failure.
func solveGeneral(c []float64, g *mat.Dense, h []float64) ([]float64, error) {
	cStd, aStd, bStd := lp.Convert(c, g, h, nil, nil)
	_, xStd, err := lp.Simplex(cStd, aStd, bStd, simplexTol, nil)
	if err != nil {
		return nil, err
	}

	// Convert splits each free variable into a positive and a negative part;
	// the original variables are the first n differences.
	n := len(c)
	x := make([]float64, n)
	for i := range x {
		x[i] = xStd[i] - xStd[i+n]
	}
	return x, nil
}
