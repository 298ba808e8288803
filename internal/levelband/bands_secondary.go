package levelband

// Secondary band tables. Negative answers appear from M1 onwards; the
// distractor generator must therefore never clamp to non-negative values.

var secondary1Bands = []Band{
	{1, 20, "Add and subtract negative numbers", cats(CatIntegers), Range{-20, 20}, feats("negatives")},
	{21, 40, "Multiply and divide integers", cats(CatIntegers, CatMultiplication, CatDivision), Range{-50, 50}, feats("negatives", "exact-division")},
	{41, 60, "Solve x + a = b", cats(CatAlgebra), Range{-50, 50}, feats("negatives")},
	{61, 80, "Solve ax = b", cats(CatAlgebra), Range{-100, 100}, feats("negatives", "exact-division")},
	{81, 100, "Evaluate expressions with integers", cats(CatAlgebra, CatIntegers), Range{-100, 100}, feats("negatives")},
}

var secondary2Bands = []Band{
	{1, 20, "Powers and square roots", cats(CatPowers), Range{1, 144}, feats("perfect-square")},
	{21, 40, "Angle sums in triangles and lines", cats(CatGeometry), Range{1, 180}, nil},
	{41, 60, "Solve ax + b = c", cats(CatAlgebra), Range{-200, 200}, feats("negatives")},
	{61, 80, "Expand and evaluate brackets", cats(CatAlgebra), Range{-200, 200}, feats("negatives")},
	{81, 100, "Linear sequences: the nth term", cats(CatSequences), Range{-300, 300}, feats("negatives")},
}

var secondary3Bands = []Band{
	{1, 20, "Pythagoras with whole-number triples", cats(CatGeometry), Range{1, 100}, feats("pythagorean-triple")},
	{21, 40, "Solve x squared = k", cats(CatAlgebra, CatPowers), Range{1, 400}, feats("perfect-square")},
	{41, 60, "Substitute into quadratic expressions", cats(CatAlgebra), Range{-400, 400}, feats("negatives")},
	{61, 80, "Simultaneous equations with integer solutions", cats(CatAlgebra), Range{-400, 400}, feats("negatives")},
	{81, 100, "Index laws with integer results", cats(CatPowers), Range{1, 1024}, nil},
}

var secondary4Bands = []Band{
	{1, 20, "Evaluate functions at a point", cats(CatFunctions), Range{-200, 200}, feats("negatives")},
	{21, 40, "Exact trigonometric ratios, scaled", cats(CatTrigonometry), Range{-200, 200}, feats("special-angles", "guarded-float", "negatives")},
	{41, 60, "Logarithms of exact powers", cats(CatLogarithms), Range{1, 1024}, feats("guarded-float")},
	{61, 80, "Composite function evaluation", cats(CatFunctions), Range{-2000, 2000}, feats("negatives")},
	{81, 100, "Mixed algebra and powers", cats(CatAlgebra, CatPowers), Range{-2000, 2000}, feats("negatives")},
}

var secondary5Bands = []Band{
	{1, 20, "Arithmetic sequences: the nth term", cats(CatSequences), Range{-500, 500}, feats("negatives")},
	{21, 40, "Geometric sequences with integer ratios", cats(CatSequences), Range{-1000, 1000}, feats("negatives")},
	{41, 60, "Logarithm laws with exact values", cats(CatLogarithms), Range{1, 4096}, feats("guarded-float")},
	{61, 80, "Factorials and counting", cats(CatMultiplication, CatDivision), Range{1, 5040}, nil},
	{81, 100, "Sums of arithmetic series", cats(CatSequences), Range{-10000, 10000}, feats("negatives")},
}

var secondary6Bands = []Band{
	{1, 20, "Differentiate polynomials at a point", cats(CatCalculus), Range{-500, 500}, feats("negatives", "guarded-float")},
	{21, 40, "Definite integrals of constants", cats(CatCalculus), Range{-500, 500}, feats("negatives", "guarded-float")},
	{41, 60, "Definite integrals of linear functions", cats(CatCalculus), Range{-1000, 1000}, feats("negatives", "guarded-float")},
	{61, 80, "Limits of polynomial expressions", cats(CatCalculus), Range{-1000, 1000}, feats("negatives", "guarded-float")},
	{81, 100, "Second derivatives and turning points", cats(CatCalculus), Range{-2000, 2000}, feats("negatives", "guarded-float")},
}
