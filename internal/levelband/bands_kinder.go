package levelband

// Kindergarten band tables. Numeric ranges stay tiny; everything is
// countable on fingers at the low end of each grade.

// cats and feats keep the table literals readable.
func cats(cs ...QuestionCategory) []QuestionCategory { return cs }
func feats(fs ...string) []string                    { return fs }

var kinder1Bands = []Band{
	{1, 10, "Count objects up to 5", cats(CatCounting), Range{1, 5}, feats("count-to-5")},
	{11, 25, "Count objects up to 10", cats(CatCounting), Range{1, 10}, feats("count-to-10")},
	{26, 45, "Which number is bigger?", cats(CatComparison), Range{1, 10}, nil},
	{46, 70, "One more, one less", cats(CatCounting, CatComparison), Range{1, 10}, nil},
	{71, 100, "Add one more object (up to 10)", cats(CatCounting, CatAddition), Range{1, 10}, nil},
}

var kinder2Bands = []Band{
	{1, 15, "Count objects up to 15", cats(CatCounting), Range{1, 15}, nil},
	{16, 35, "Count objects up to 20", cats(CatCounting), Range{1, 20}, feats("count-to-20")},
	{36, 55, "Compare numbers up to 20", cats(CatComparison), Range{1, 20}, nil},
	{56, 80, "Add small numbers (sums to 20)", cats(CatAddition), Range{1, 20}, nil},
	{81, 100, "One more, one less within 20", cats(CatCounting, CatComparison), Range{1, 20}, nil},
}

var kinder3Bands = []Band{
	{1, 15, "Add within 10", cats(CatAddition), Range{1, 10}, nil},
	{16, 40, "Take away within 10", cats(CatSubtraction), Range{1, 10}, nil},
	{41, 60, "Number before and after (up to 20)", cats(CatCounting, CatComparison), Range{1, 20}, nil},
	{61, 85, "Add and take away within 20", cats(CatAddition, CatSubtraction), Range{1, 20}, nil},
	{86, 100, "Find the missing number (within 20)", cats(CatAddition, CatAlgebra), Range{1, 20}, feats("missing-number")},
}
