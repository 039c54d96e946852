package ephemeris

// mercuryTheory is the truncated VSOP87D theory of Mercury.
var mercuryTheory = &planetTheory{
	l: series{
		{ // L0
			{440250710, 0, 0},
			{40989415, 1.48302034, 26087.90314157},
			{5046294, 4.4778549, 52175.8062831},
			{855347, 1.165203, 78263.709425},
			{165590, 4.119692, 104351.612566},
			{34562, 0.77931, 130439.51571},
			{7583, 3.7135, 156527.4188},
			{3560, 1.512, 1109.3786},
			{1803, 4.1033, 5661.332},
			{1726, 0.3583, 182615.322},
			{1590, 2.9951, 25028.5212},
			{1365, 4.5992, 27197.2817},
			{1017, 0.8803, 31749.2352},
			{714, 1.541, 24978.525},
			{644, 5.303, 21535.95},
			{451, 6.05, 51116.424},
			{404, 3.282, 208703.225},
			{352, 5.242, 20426.571},
			{345, 2.792, 15874.618},
			{343, 5.765, 955.6},
			{339, 5.863, 25558.212},
			{325, 1.337, 53285.185},
			{273, 2.495, 529.691},
			{264, 3.917, 57837.138},
			{260, 0.987, 4551.953},
			{239, 0.113, 1059.382},
			{235, 0.267, 11322.664},
			{217, 0.66, 13521.751},
			{209, 2.092, 47623.853},
			{183, 2.629, 27043.503},
			{182, 2.434, 25661.305},
			{176, 4.536, 51066.428},
			{173, 2.452, 24498.83},
			{142, 3.36, 37410.567},
			{138, 0.291, 10213.286},
			{125, 3.721, 39609.655},
			{118, 2.781, 77204.327},
			{106, 4.206, 19804.827},
		},
		{ // L1
			{2608814706223, 0, 0},
			{1126008, 6.2170397, 26087.9031416},
			{303471, 3.055655, 52175.806283},
			{80538, 6.10455, 78263.70942},
			{21245, 2.83532, 104351.61257},
			{5592, 5.8268, 130439.5157},
			{1472, 2.5185, 156527.4188},
			{388, 5.48, 182615.322},
			{352, 3.052, 1109.379},
			{103, 2.149, 24978.525},
			{94, 6.12, 27197.28},
		},
		{ // L2
			{53050, 0, 0},
			{16904, 4.69072, 26087.90314},
			{7397, 1.3474, 52175.8063},
			{3018, 4.4564, 78263.7094},
			{1107, 1.2623, 104351.6126},
			{378, 4.32, 130439.516},
			{123, 1.069, 156527.419},
			{39, 4.08, 182615.32},
		},
		{ // L3
			{188, 0.035, 52175.806},
			{142, 3.125, 26087.903},
			{97, 3, 78263.71},
			{44, 6.02, 104351.61},
			{35, 0, 0},
			{18, 2.78, 130439.52},
		},
		{ // L4
			{114, 3.1416, 0},
			{3, 2.03, 26087.9},
			{2, 1.42, 78263.71},
			{2, 4.5, 52175.81},
		},
		{ // L5
			{1, 3.14, 0},
		},
	},
	b: series{
		{ // B0
			{11737529, 1.98357499, 26087.90314157},
			{2388077, 5.0373896, 52175.8062831},
			{1222840, 3.1415927, 0},
			{543252, 1.796444, 78263.709425},
			{129779, 4.832325, 104351.612566},
			{31867, 1.58088, 130439.51571},
			{7963, 4.6097, 156527.4188},
			{2014, 1.3532, 182615.322},
			{514, 4.378, 208703.225},
			{209, 2.02, 24978.525},
			{208, 4.918, 27197.282},
			{132, 1.119, 234791.128},
			{121, 1.813, 53285.185},
			{100, 5.657, 20426.571},
		},
		{ // B1
			{429151, 3.501698, 26087.903142},
			{146234, 3.141593, 0},
			{22675, 0.01515, 52175.80628},
			{10895, 0.4854, 78263.70942},
			{6353, 3.4294, 104351.6126},
			{2496, 0.1605, 130439.5157},
			{860, 3.185, 156527.419},
			{278, 6.21, 182615.322},
			{86, 2.95, 208703.23},
			{28, 0.29, 27197.28},
			{26, 5.98, 234791.13},
		},
		{ // B2
			{11831, 4.79066, 26087.90314},
			{1914, 0, 0},
			{1045, 1.2122, 52175.8063},
			{266, 4.434, 78263.709},
			{170, 1.623, 104351.613},
			{96, 4.8, 130439.52},
			{45, 1.61, 156527.42},
			{18, 4.67, 182615.32},
			{7, 1.43, 208703.23},
		},
		{ // B3
			{235, 0.354, 26087.903},
			{161, 0, 0},
			{19, 4.36, 52175.81},
			{6, 2.51, 78263.71},
			{5, 6.14, 104351.61},
			{3, 3.14, 156527.42},
			{2, 6.27, 130439.52},
		},
		{ // B4
			{4, 1.75, 26087.9},
			{1, 3.14, 0},
		},
	},
	r: series{
		{ // R0
			{39528272, 0, 0},
			{7834132, 6.1923372, 26087.9031416},
			{795526, 2.959897, 52175.806283},
			{121282, 6.010642, 78263.709425},
			{21922, 2.7782, 104351.61257},
			{4354, 5.8289, 130439.5157},
			{918, 2.597, 156527.419},
			{290, 1.424, 25028.521},
			{260, 3.028, 27197.282},
			{202, 5.647, 182615.322},
			{201, 5.592, 31749.235},
			{142, 6.253, 24978.525},
			{100, 3.734, 21535.95},
		},
		{ // R1
			{217348, 4.656172, 26087.903142},
			{44142, 1.42386, 52175.80628},
			{10094, 4.47466, 78263.70942},
			{2433, 1.2423, 104351.6126},
			{1624, 0, 0},
			{604, 4.293, 130439.516},
			{153, 1.061, 156527.419},
			{39, 4.11, 182615.32},
		},
		{ // R2
			{3118, 3.0823, 26087.9031},
			{1245, 6.1518, 52175.8063},
			{425, 2.926, 78263.709},
			{136, 5.98, 104351.613},
			{42, 2.75, 130439.52},
			{22, 3.14, 0},
			{13, 5.8, 156527.42},
		},
		{ // R3
			{33, 1.68, 26087.9},
			{24, 4.63, 52175.81},
			{12, 1.39, 78263.71},
			{5, 4.44, 104351.61},
			{2, 1.21, 130439.52},
		},
	},
}
