package domain

// Base service levels per origin region, indexed by the leading digit of the
// origin zip. Each table covers the whole destination zip space with ranges
// aligned to the CEP macro regions:
//
//	0 São Paulo capital     5 Pernambuco/AL/PB/RN
//	1 São Paulo interior    6 Ceará/PI/MA/PA/AM/AP/RR
//	2 Rio de Janeiro/ES     7 DF/GO/TO/MT/MS/RO/AC
//	3 Minas Gerais          8 Paraná/Santa Catarina
//	4 Bahia/Sergipe         9 Rio Grande do Sul
//
// Loaded once at startup; the estimator never rebuilds these.
var deadlineTables = [10]deadlineTable{
	{ // origin 0xxxxxxx
		{9999999, 1, 3}, {19999999, 1, 3}, {29999999, 2, 4}, {39999999, 2, 4},
		{49999999, 4, 6}, {59999999, 5, 8}, {69999999, 6, 9}, {79999999, 3, 5},
		{89999999, 2, 4}, {99999999, 3, 5},
	},
	{ // origin 1xxxxxxx
		{9999999, 1, 3}, {19999999, 1, 3}, {29999999, 2, 4}, {39999999, 2, 4},
		{49999999, 4, 6}, {59999999, 5, 8}, {69999999, 6, 9}, {79999999, 3, 5},
		{89999999, 2, 4}, {99999999, 3, 5},
	},
	{ // origin 2xxxxxxx
		{9999999, 2, 4}, {19999999, 2, 4}, {29999999, 1, 3}, {39999999, 2, 4},
		{49999999, 3, 5}, {59999999, 4, 6}, {69999999, 6, 9}, {79999999, 3, 5},
		{89999999, 3, 5}, {99999999, 4, 6},
	},
	{ // origin 3xxxxxxx
		{9999999, 2, 4}, {19999999, 2, 4}, {29999999, 2, 4}, {39999999, 1, 3},
		{49999999, 3, 5}, {59999999, 4, 6}, {69999999, 5, 8}, {79999999, 3, 5},
		{89999999, 3, 5}, {99999999, 4, 6},
	},
	{ // origin 4xxxxxxx
		{9999999, 4, 6}, {19999999, 4, 6}, {29999999, 3, 5}, {39999999, 3, 5},
		{49999999, 1, 3}, {59999999, 2, 4}, {69999999, 4, 6}, {79999999, 4, 6},
		{89999999, 5, 8}, {99999999, 5, 8},
	},
	{ // origin 5xxxxxxx
		{9999999, 5, 8}, {19999999, 5, 8}, {29999999, 4, 6}, {39999999, 4, 6},
		{49999999, 2, 4}, {59999999, 1, 3}, {69999999, 3, 5}, {79999999, 4, 6},
		{89999999, 5, 8}, {99999999, 6, 9},
	},
	{ // origin 6xxxxxxx
		{9999999, 6, 9}, {19999999, 6, 9}, {29999999, 6, 9}, {39999999, 5, 8},
		{49999999, 4, 6}, {59999999, 3, 5}, {69999999, 2, 4}, {79999999, 5, 8},
		{89999999, 6, 9}, {99999999, 7, 10},
	},
	{ // origin 7xxxxxxx
		{9999999, 3, 5}, {19999999, 3, 5}, {29999999, 3, 5}, {39999999, 3, 5},
		{49999999, 4, 6}, {59999999, 4, 6}, {69999999, 5, 8}, {79999999, 2, 4},
		{89999999, 4, 6}, {99999999, 4, 6},
	},
	{ // origin 8xxxxxxx
		{9999999, 2, 4}, {19999999, 2, 4}, {29999999, 3, 5}, {39999999, 3, 5},
		{49999999, 5, 8}, {59999999, 5, 8}, {69999999, 6, 9}, {79999999, 4, 6},
		{89999999, 1, 3}, {99999999, 2, 4},
	},
	{ // origin 9xxxxxxx
		{9999999, 3, 5}, {19999999, 3, 5}, {29999999, 4, 6}, {39999999, 4, 6},
		{49999999, 5, 8}, {59999999, 6, 9}, {69999999, 7, 10}, {79999999, 4, 6},
		{89999999, 2, 4}, {99999999, 1, 3},
	},
}
