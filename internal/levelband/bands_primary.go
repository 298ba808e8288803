package levelband

// Primary (elementary) band tables.

var primary1Bands = []Band{
	{1, 10, "Count and compare up to 10", cats(CatCounting, CatComparison), Range{1, 10}, nil},
	{11, 30, "Add within 20, no carrying", cats(CatAddition), Range{1, 20}, feats("no-carry")},
	{31, 50, "Subtract within 20, no borrowing", cats(CatSubtraction), Range{1, 20}, feats("no-borrow")},
	{51, 70, "Add and subtract within 20", cats(CatAddition, CatSubtraction), Range{1, 20}, nil},
	{71, 90, "Doubles and halves within 20", cats(CatAddition, CatDivision), Range{1, 20}, feats("exact-division")},
	{91, 100, "Find the missing number (up to 20)", cats(CatAddition, CatAlgebra), Range{1, 20}, feats("missing-number")},
}

var primary2Bands = []Band{
	{1, 20, "Add two-digit numbers, with and without carrying", cats(CatAddition), Range{10, 99}, feats("carry")},
	{21, 40, "Subtract two-digit numbers, with and without borrowing", cats(CatSubtraction), Range{10, 99}, feats("borrow")},
	{41, 55, "Multiplication tables: 2, 5 and 10", cats(CatMultiplication), Range{1, 100}, feats("tables-2-5-10")},
	{56, 70, "Multiplication tables: 3, 4 and 6", cats(CatMultiplication), Range{1, 100}, feats("tables-3-4-6")},
	{71, 85, "Division facts from the tables", cats(CatDivision), Range{1, 100}, feats("exact-division")},
	{86, 100, "Mixed two-digit arithmetic", cats(CatAddition, CatSubtraction, CatMultiplication), Range{1, 100}, nil},
}

var primary3Bands = []Band{
	{1, 20, "Multiplication tables to 10", cats(CatMultiplication), Range{1, 100}, feats("tables-to-10")},
	{21, 40, "Multiplication tables to 12", cats(CatMultiplication), Range{1, 144}, feats("tables-to-12")},
	{41, 60, "Division facts to 144", cats(CatDivision), Range{1, 144}, feats("exact-division")},
	{61, 80, "Add three-digit numbers", cats(CatAddition), Range{100, 999}, nil},
	{81, 100, "Subtract three-digit numbers", cats(CatSubtraction), Range{100, 999}, nil},
}

var primary4Bands = []Band{
	{1, 20, "Factors and multiples", cats(CatMultiplication, CatDivision), Range{1, 100}, nil},
	{21, 40, "Fractions of whole amounts", cats(CatFractions), Range{1, 100}, feats("integer-result")},
	{41, 60, "Multiply two-digit by one-digit numbers", cats(CatMultiplication), Range{1, 999}, nil},
	{61, 80, "Long division with exact quotients", cats(CatDivision), Range{1, 999}, feats("exact-division")},
	{81, 100, "Multiply two- and three-digit numbers", cats(CatMultiplication), Range{1, 9999}, nil},
}

var primary5Bands = []Band{
	{1, 20, "Order of operations without brackets", cats(CatAddition, CatMultiplication), Range{1, 100}, feats("bodmas")},
	{21, 40, "Simple percentages of amounts", cats(CatPercentages), Range{1, 400}, feats("integer-result")},
	{41, 60, "Perimeter and area of rectangles", cats(CatGeometry), Range{1, 900}, nil},
	{61, 80, "Add and subtract large numbers", cats(CatAddition, CatSubtraction), Range{1, 9999}, nil},
	{81, 100, "Order of operations with brackets", cats(CatAddition, CatMultiplication), Range{1, 9999}, feats("bodmas", "brackets")},
}

var primary6Bands = []Band{
	{1, 20, "Ratios and sharing", cats(CatFractions, CatDivision), Range{1, 100}, feats("integer-result")},
	{21, 40, "Averages of small sets", cats(CatDivision), Range{1, 100}, feats("integer-result")},
	{41, 60, "Squares and small powers", cats(CatPowers), Range{1, 400}, nil},
	{61, 80, "Percentages of amounts", cats(CatPercentages), Range{1, 1000}, feats("integer-result")},
	{81, 100, "Mixed multi-step arithmetic", cats(CatAddition, CatMultiplication, CatDivision), Range{1, 1000}, feats("bodmas")},
}
