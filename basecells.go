package hexgrid

// invalidBaseCell marks the missing neighbor in the deleted pentagon direction.
const invalidBaseCell = 127

// baseCellInfo describes a base cell's home position and pentagon status.
type baseCellInfo struct {
	home         faceIJK
	isPentagon   bool
	cwOffsetPent [2]int // faces on which a pentagon is rotated clockwise
}

// baseCellRotation names the base cell at a face position and the number of
// 60 degree counter-clockwise rotations from that face into the base cell's
// home frame.
type baseCellRotation struct {
	baseCell int
	ccwRot60 int
}

func isBaseCellPentagon(bc int) bool {
	if bc < 0 || bc >= NumBaseCells {
		return false
	}
	return baseCellData[bc].isPentagon
}

// isBaseCellPolarPentagon reports the two pentagons centered near the poles.
func isBaseCellPolarPentagon(bc int) bool { return bc == 4 || bc == 117 }

func faceIJKToBaseCell(f faceIJK) int {
	return faceIJKBaseCells[f.face][f.coord.i][f.coord.j][f.coord.k].baseCell
}

func faceIJKToBaseCellCCWRot60(f faceIJK) int {
	return faceIJKBaseCells[f.face][f.coord.i][f.coord.j][f.coord.k].ccwRot60
}

// baseCellIsCWOffset reports whether a pentagon base cell is entered with a
// clockwise rotation from face.
func baseCellIsCWOffset(bc, face int) bool {
	d := baseCellData[bc]
	return d.cwOffsetPent[0] == face || d.cwOffsetPent[1] == face
}

// baseCellToCCWRot60 returns the rotation of bc as seen from face, or -1 if
// the base cell does not touch the face.
func baseCellToCCWRot60(bc, face int) int {
	if face < 0 || face >= numIcosaFaces {
		return -1
	}
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				if e := faceIJKBaseCells[face][i][j][k]; e.baseCell == bc {
					return e.ccwRot60
				}
			}
		}
	}
	return -1
}

// baseCellDirection returns the direction from origin to an adjacent base
// cell, or InvalidDigit.
func baseCellDirection(origin, neighbor int) Direction {
	for d := Center; d < InvalidDigit; d++ {
		if baseCellNeighbors[origin][d] == neighbor {
			return d
		}
	}
	return InvalidDigit
}

// pentagonDirectionFaces lists, for each pentagon base cell, the faces of its
// J, JK, I, IK and IJ children.
var pentagonDirectionFaces = map[int][5]int{
	4:   {4, 0, 2, 1, 3},
	14:  {6, 11, 2, 7, 1},
	24:  {5, 10, 1, 6, 0},
	38:  {7, 12, 3, 8, 2},
	49:  {9, 14, 0, 5, 4},
	58:  {8, 13, 4, 9, 3},
	63:  {11, 6, 15, 10, 16},
	72:  {12, 7, 16, 11, 17},
	83:  {10, 5, 19, 14, 15},
	97:  {13, 8, 17, 12, 18},
	107: {14, 9, 18, 13, 19},
	117: {15, 19, 17, 18, 16},
}

// faceIJKBaseCells maps every resolution 0 position on a face to its base
// cell and rotation.
var faceIJKBaseCells = [numIcosaFaces][3][3][3]baseCellRotation{
	{ // face 0
		{
			{{16, 0}, {18, 0}, {24, 0}},
			{{33, 0}, {30, 0}, {32, 3}},
			{{49, 1}, {48, 3}, {50, 3}},
		},
		{
			{{8, 0}, {5, 5}, {10, 5}},
			{{22, 0}, {16, 0}, {18, 0}},
			{{41, 1}, {33, 0}, {30, 0}},
		},
		{
			{{4, 0}, {0, 5}, {2, 5}},
			{{15, 1}, {8, 0}, {5, 5}},
			{{31, 1}, {22, 0}, {16, 0}},
		},
	},
	{ // face 1
		{
			{{2, 0}, {6, 0}, {14, 0}},
			{{10, 0}, {11, 0}, {17, 3}},
			{{24, 1}, {23, 3}, {25, 3}},
		},
		{
			{{0, 0}, {1, 5}, {9, 5}},
			{{5, 0}, {2, 0}, {6, 0}},
			{{18, 1}, {10, 0}, {11, 0}},
		},
		{
			{{4, 1}, {3, 5}, {7, 5}},
			{{8, 1}, {0, 0}, {1, 5}},
			{{16, 1}, {5, 0}, {2, 0}},
		},
	},
	{ // face 2
		{
			{{7, 0}, {21, 0}, {38, 0}},
			{{9, 0}, {19, 0}, {34, 3}},
			{{14, 1}, {20, 3}, {36, 3}},
		},
		{
			{{3, 0}, {13, 5}, {29, 5}},
			{{1, 0}, {7, 0}, {21, 0}},
			{{6, 1}, {9, 0}, {19, 0}},
		},
		{
			{{4, 2}, {12, 5}, {26, 5}},
			{{0, 1}, {3, 0}, {13, 5}},
			{{2, 1}, {1, 0}, {7, 0}},
		},
	},
	{ // face 3
		{
			{{26, 0}, {42, 0}, {58, 0}},
			{{29, 0}, {43, 0}, {62, 3}},
			{{38, 1}, {47, 3}, {64, 3}},
		},
		{
			{{12, 0}, {28, 5}, {44, 5}},
			{{13, 0}, {26, 0}, {42, 0}},
			{{21, 1}, {29, 0}, {43, 0}},
		},
		{
			{{4, 3}, {15, 5}, {31, 5}},
			{{3, 1}, {12, 0}, {28, 5}},
			{{7, 1}, {13, 0}, {26, 0}},
		},
	},
	{ // face 4
		{
			{{31, 0}, {41, 0}, {49, 0}},
			{{44, 0}, {53, 0}, {61, 3}},
			{{58, 1}, {65, 3}, {75, 3}},
		},
		{
			{{15, 0}, {22, 5}, {33, 5}},
			{{28, 0}, {31, 0}, {41, 0}},
			{{42, 1}, {44, 0}, {53, 0}},
		},
		{
			{{4, 4}, {8, 5}, {16, 5}},
			{{12, 1}, {15, 0}, {22, 5}},
			{{26, 1}, {28, 0}, {31, 0}},
		},
	},
	{ // face 5
		{
			{{50, 0}, {48, 0}, {49, 3}},
			{{32, 0}, {30, 3}, {33, 3}},
			{{24, 3}, {18, 3}, {16, 3}},
		},
		{
			{{70, 0}, {67, 0}, {66, 3}},
			{{52, 3}, {50, 0}, {48, 0}},
			{{37, 3}, {32, 0}, {30, 3}},
		},
		{
			{{83, 0}, {87, 3}, {85, 3}},
			{{74, 3}, {70, 0}, {67, 0}},
			{{57, 1}, {52, 3}, {50, 0}},
		},
	},
	{ // face 6
		{
			{{25, 0}, {23, 0}, {24, 3}},
			{{17, 0}, {11, 3}, {10, 3}},
			{{14, 3}, {6, 3}, {2, 3}},
		},
		{
			{{45, 0}, {39, 0}, {37, 3}},
			{{35, 3}, {25, 0}, {23, 0}},
			{{27, 3}, {17, 0}, {11, 3}},
		},
		{
			{{63, 0}, {59, 3}, {57, 3}},
			{{56, 3}, {45, 0}, {39, 0}},
			{{46, 3}, {35, 3}, {25, 0}},
		},
	},
	{ // face 7
		{
			{{36, 0}, {20, 0}, {14, 3}},
			{{34, 0}, {19, 3}, {9, 3}},
			{{38, 3}, {21, 3}, {7, 3}},
		},
		{
			{{55, 0}, {40, 0}, {27, 3}},
			{{54, 3}, {36, 0}, {20, 0}},
			{{51, 3}, {34, 0}, {19, 3}},
		},
		{
			{{72, 0}, {60, 3}, {46, 3}},
			{{73, 3}, {55, 0}, {40, 0}},
			{{71, 3}, {54, 3}, {36, 0}},
		},
	},
	{ // face 8
		{
			{{64, 0}, {47, 0}, {38, 3}},
			{{62, 0}, {43, 3}, {29, 3}},
			{{58, 3}, {42, 3}, {26, 3}},
		},
		{
			{{84, 0}, {69, 0}, {51, 3}},
			{{82, 3}, {64, 0}, {47, 0}},
			{{76, 3}, {62, 0}, {43, 3}},
		},
		{
			{{97, 0}, {89, 3}, {71, 3}},
			{{98, 3}, {84, 0}, {69, 0}},
			{{96, 3}, {82, 3}, {64, 0}},
		},
	},
	{ // face 9
		{
			{{75, 0}, {65, 0}, {58, 3}},
			{{61, 0}, {53, 3}, {44, 3}},
			{{49, 3}, {41, 3}, {31, 3}},
		},
		{
			{{94, 0}, {86, 0}, {76, 3}},
			{{81, 3}, {75, 0}, {65, 0}},
			{{66, 3}, {61, 0}, {53, 3}},
		},
		{
			{{107, 0}, {104, 3}, {96, 3}},
			{{101, 3}, {94, 0}, {86, 0}},
			{{85, 3}, {81, 3}, {75, 0}},
		},
	},
	{ // face 10
		{
			{{57, 0}, {59, 0}, {63, 3}},
			{{74, 0}, {78, 3}, {79, 3}},
			{{83, 3}, {92, 3}, {95, 3}},
		},
		{
			{{37, 0}, {39, 3}, {45, 3}},
			{{52, 0}, {57, 0}, {59, 0}},
			{{70, 3}, {74, 0}, {78, 3}},
		},
		{
			{{24, 0}, {23, 3}, {25, 3}},
			{{32, 3}, {37, 0}, {39, 3}},
			{{50, 3}, {52, 0}, {57, 0}},
		},
	},
	{ // face 11
		{
			{{46, 0}, {60, 0}, {72, 3}},
			{{56, 0}, {68, 3}, {80, 3}},
			{{63, 3}, {77, 3}, {90, 3}},
		},
		{
			{{27, 0}, {40, 3}, {55, 3}},
			{{35, 0}, {46, 0}, {60, 0}},
			{{45, 3}, {56, 0}, {68, 3}},
		},
		{
			{{14, 0}, {20, 3}, {36, 3}},
			{{17, 3}, {27, 0}, {40, 3}},
			{{25, 3}, {35, 0}, {46, 0}},
		},
	},
	{ // face 12
		{
			{{71, 0}, {89, 0}, {97, 3}},
			{{73, 0}, {91, 3}, {103, 3}},
			{{72, 3}, {88, 3}, {105, 3}},
		},
		{
			{{51, 0}, {69, 3}, {84, 3}},
			{{54, 0}, {71, 0}, {89, 0}},
			{{55, 3}, {73, 0}, {91, 3}},
		},
		{
			{{38, 0}, {47, 3}, {64, 3}},
			{{34, 3}, {51, 0}, {69, 3}},
			{{36, 3}, {54, 0}, {71, 0}},
		},
	},
	{ // face 13
		{
			{{96, 0}, {104, 0}, {107, 3}},
			{{98, 0}, {110, 3}, {115, 3}},
			{{97, 3}, {111, 3}, {119, 3}},
		},
		{
			{{76, 0}, {86, 3}, {94, 3}},
			{{82, 0}, {96, 0}, {104, 0}},
			{{84, 3}, {98, 0}, {110, 3}},
		},
		{
			{{58, 0}, {65, 3}, {75, 3}},
			{{62, 3}, {76, 0}, {86, 3}},
			{{64, 3}, {82, 0}, {96, 0}},
		},
	},
	{ // face 14
		{
			{{85, 0}, {87, 0}, {83, 3}},
			{{101, 0}, {102, 3}, {100, 3}},
			{{107, 3}, {112, 3}, {114, 3}},
		},
		{
			{{66, 0}, {67, 3}, {70, 3}},
			{{81, 0}, {85, 0}, {87, 0}},
			{{94, 3}, {101, 0}, {102, 3}},
		},
		{
			{{49, 0}, {48, 3}, {50, 3}},
			{{61, 3}, {66, 0}, {67, 3}},
			{{75, 3}, {81, 0}, {85, 0}},
		},
	},
	{ // face 15
		{
			{{95, 0}, {92, 0}, {83, 0}},
			{{79, 0}, {78, 0}, {74, 3}},
			{{63, 1}, {59, 3}, {57, 3}},
		},
		{
			{{109, 0}, {108, 0}, {100, 5}},
			{{93, 1}, {95, 0}, {92, 0}},
			{{77, 1}, {79, 0}, {78, 0}},
		},
		{
			{{117, 4}, {118, 5}, {114, 5}},
			{{106, 1}, {109, 0}, {108, 0}},
			{{90, 1}, {93, 1}, {95, 0}},
		},
	},
	{ // face 16
		{
			{{90, 0}, {77, 0}, {63, 0}},
			{{80, 0}, {68, 0}, {56, 3}},
			{{72, 1}, {60, 3}, {46, 3}},
		},
		{
			{{106, 0}, {93, 0}, {79, 5}},
			{{99, 1}, {90, 0}, {77, 0}},
			{{88, 1}, {80, 0}, {68, 0}},
		},
		{
			{{117, 3}, {109, 5}, {95, 5}},
			{{113, 1}, {106, 0}, {93, 0}},
			{{105, 1}, {99, 1}, {90, 0}},
		},
	},
	{ // face 17
		{
			{{105, 0}, {88, 0}, {72, 0}},
			{{103, 0}, {91, 0}, {73, 3}},
			{{97, 1}, {89, 3}, {71, 3}},
		},
		{
			{{113, 0}, {99, 0}, {80, 5}},
			{{116, 1}, {105, 0}, {88, 0}},
			{{111, 1}, {103, 0}, {91, 0}},
		},
		{
			{{117, 2}, {106, 5}, {90, 5}},
			{{121, 1}, {113, 0}, {99, 0}},
			{{119, 1}, {116, 1}, {105, 0}},
		},
	},
	{ // face 18
		{
			{{119, 0}, {111, 0}, {97, 0}},
			{{115, 0}, {110, 0}, {98, 3}},
			{{107, 1}, {104, 3}, {96, 3}},
		},
		{
			{{121, 0}, {116, 0}, {103, 5}},
			{{120, 1}, {119, 0}, {111, 0}},
			{{112, 1}, {115, 0}, {110, 0}},
		},
		{
			{{117, 1}, {113, 5}, {105, 5}},
			{{118, 1}, {121, 0}, {116, 0}},
			{{114, 1}, {120, 1}, {119, 0}},
		},
	},
	{ // face 19
		{
			{{114, 0}, {112, 0}, {107, 0}},
			{{100, 0}, {102, 0}, {101, 3}},
			{{83, 1}, {87, 3}, {85, 3}},
		},
		{
			{{118, 0}, {120, 0}, {115, 5}},
			{{108, 1}, {114, 0}, {112, 0}},
			{{92, 1}, {100, 0}, {102, 0}},
		},
		{
			{{117, 0}, {121, 5}, {119, 5}},
			{{109, 1}, {118, 0}, {120, 0}},
			{{95, 1}, {108, 1}, {114, 0}},
		},
	},
}

// baseCellNeighbors gives the neighboring base cell in each direction.
var baseCellNeighbors = [NumBaseCells][7]int{
	{0, 1, 5, 2, 4, 3, 8},               // base cell 0
	{1, 7, 6, 9, 0, 3, 2},               // base cell 1
	{2, 6, 10, 11, 0, 1, 5},             // base cell 2
	{3, 13, 1, 7, 4, 12, 0},             // base cell 3
	{4, 127, 15, 8, 3, 0, 12},           // base cell 4
	{5, 2, 18, 10, 8, 0, 16},            // base cell 5
	{6, 14, 11, 17, 1, 9, 2},            // base cell 6
	{7, 21, 9, 19, 3, 13, 1},            // base cell 7
	{8, 5, 22, 16, 4, 0, 15},            // base cell 8
	{9, 19, 14, 20, 1, 7, 6},            // base cell 9
	{10, 11, 24, 23, 5, 2, 18},          // base cell 10
	{11, 17, 23, 25, 2, 6, 10},          // base cell 11
	{12, 28, 13, 26, 4, 15, 3},          // base cell 12
	{13, 26, 21, 29, 3, 12, 7},          // base cell 13
	{14, 127, 17, 27, 9, 20, 6},         // base cell 14
	{15, 22, 28, 31, 4, 8, 12},          // base cell 15
	{16, 18, 33, 30, 8, 5, 22},          // base cell 16
	{17, 11, 14, 6, 35, 25, 27},         // base cell 17
	{18, 24, 30, 32, 5, 10, 16},         // base cell 18
	{19, 34, 20, 36, 7, 21, 9},          // base cell 19
	{20, 14, 19, 9, 40, 27, 36},         // base cell 20
	{21, 38, 19, 34, 13, 29, 7},         // base cell 21
	{22, 16, 41, 33, 15, 8, 31},         // base cell 22
	{23, 24, 11, 10, 39, 37, 25},        // base cell 23
	{24, 127, 32, 37, 10, 23, 18},       // base cell 24
	{25, 23, 17, 11, 45, 39, 35},        // base cell 25
	{26, 42, 29, 43, 12, 28, 13},        // base cell 26
	{27, 40, 35, 46, 14, 20, 17},        // base cell 27
	{28, 31, 42, 44, 12, 15, 26},        // base cell 28
	{29, 43, 38, 47, 13, 26, 21},        // base cell 29
	{30, 32, 48, 50, 16, 18, 33},        // base cell 30
	{31, 41, 44, 53, 15, 22, 28},        // base cell 31
	{32, 30, 24, 18, 52, 50, 37},        // base cell 32
	{33, 30, 49, 48, 22, 16, 41},        // base cell 33
	{34, 19, 38, 21, 54, 36, 51},        // base cell 34
	{35, 46, 45, 56, 17, 27, 25},        // base cell 35
	{36, 20, 34, 19, 55, 40, 54},        // base cell 36
	{37, 39, 52, 57, 24, 23, 32},        // base cell 37
	{38, 127, 34, 51, 29, 47, 21},       // base cell 38
	{39, 37, 25, 23, 59, 57, 45},        // base cell 39
	{40, 27, 36, 20, 60, 46, 55},        // base cell 40
	{41, 49, 53, 61, 22, 33, 31},        // base cell 41
	{42, 58, 43, 62, 28, 44, 26},        // base cell 42
	{43, 62, 47, 64, 26, 42, 29},        // base cell 43
	{44, 53, 58, 65, 28, 31, 42},        // base cell 44
	{45, 39, 35, 25, 63, 59, 56},        // base cell 45
	{46, 60, 56, 68, 27, 40, 35},        // base cell 46
	{47, 38, 43, 29, 69, 51, 64},        // base cell 47
	{48, 49, 30, 33, 67, 66, 50},        // base cell 48
	{49, 127, 61, 66, 33, 48, 41},       // base cell 49
	{50, 48, 32, 30, 70, 67, 52},        // base cell 50
	{51, 69, 54, 71, 38, 47, 34},        // base cell 51
	{52, 57, 70, 74, 32, 37, 50},        // base cell 52
	{53, 61, 65, 75, 31, 41, 44},        // base cell 53
	{54, 71, 55, 73, 34, 51, 36},        // base cell 54
	{55, 40, 54, 36, 72, 60, 73},        // base cell 55
	{56, 68, 63, 77, 35, 46, 45},        // base cell 56
	{57, 59, 74, 78, 37, 39, 52},        // base cell 57
	{58, 127, 62, 76, 44, 65, 42},       // base cell 58
	{59, 63, 78, 79, 39, 45, 57},        // base cell 59
	{60, 72, 68, 80, 40, 55, 46},        // base cell 60
	{61, 53, 49, 41, 81, 75, 66},        // base cell 61
	{62, 43, 58, 42, 82, 64, 76},        // base cell 62
	{63, 127, 56, 45, 79, 59, 77},       // base cell 63
	{64, 47, 62, 43, 84, 69, 82},        // base cell 64
	{65, 58, 53, 44, 86, 76, 75},        // base cell 65
	{66, 67, 81, 85, 49, 48, 61},        // base cell 66
	{67, 66, 50, 48, 87, 85, 70},        // base cell 67
	{68, 56, 60, 46, 90, 77, 80},        // base cell 68
	{69, 51, 64, 47, 89, 71, 84},        // base cell 69
	{70, 67, 52, 50, 83, 87, 74},        // base cell 70
	{71, 89, 73, 91, 51, 69, 54},        // base cell 71
	{72, 127, 73, 55, 80, 60, 88},       // base cell 72
	{73, 91, 72, 88, 54, 71, 55},        // base cell 73
	{74, 78, 83, 92, 52, 57, 70},        // base cell 74
	{75, 65, 61, 53, 94, 86, 81},        // base cell 75
	{76, 86, 82, 96, 58, 65, 62},        // base cell 76
	{77, 63, 68, 56, 93, 79, 90},        // base cell 77
	{78, 74, 59, 57, 95, 92, 79},        // base cell 78
	{79, 78, 63, 59, 93, 95, 77},        // base cell 79
	{80, 68, 72, 60, 99, 90, 88},        // base cell 80
	{81, 85, 94, 101, 61, 66, 75},       // base cell 81
	{82, 96, 84, 98, 62, 76, 64},        // base cell 82
	{83, 127, 74, 70, 100, 87, 92},      // base cell 83
	{84, 69, 82, 64, 97, 89, 98},        // base cell 84
	{85, 87, 101, 102, 66, 67, 81},      // base cell 85
	{86, 76, 75, 65, 104, 96, 94},       // base cell 86
	{87, 83, 102, 100, 67, 70, 85},      // base cell 87
	{88, 72, 91, 73, 99, 80, 105},       // base cell 88
	{89, 97, 91, 103, 69, 84, 71},       // base cell 89
	{90, 77, 80, 68, 106, 93, 99},       // base cell 90
	{91, 73, 89, 71, 105, 88, 103},      // base cell 91
	{92, 83, 78, 74, 108, 100, 95},      // base cell 92
	{93, 79, 90, 77, 109, 95, 106},      // base cell 93
	{94, 86, 81, 75, 107, 104, 101},     // base cell 94
	{95, 92, 79, 78, 109, 108, 93},      // base cell 95
	{96, 104, 98, 110, 76, 86, 82},      // base cell 96
	{97, 127, 98, 84, 103, 89, 111},     // base cell 97
	{98, 110, 97, 111, 82, 96, 84},      // base cell 98
	{99, 80, 105, 88, 106, 90, 113},     // base cell 99
	{100, 102, 83, 87, 108, 114, 92},    // base cell 100
	{101, 102, 107, 112, 81, 85, 94},    // base cell 101
	{102, 101, 87, 85, 114, 112, 100},   // base cell 102
	{103, 91, 97, 89, 116, 105, 111},    // base cell 103
	{104, 107, 110, 115, 86, 94, 96},    // base cell 104
	{105, 88, 103, 91, 113, 99, 116},    // base cell 105
	{106, 93, 99, 90, 117, 109, 113},    // base cell 106
	{107, 127, 101, 94, 115, 104, 112},  // base cell 107
	{108, 100, 95, 92, 118, 114, 109},   // base cell 108
	{109, 108, 93, 95, 117, 118, 106},   // base cell 109
	{110, 98, 104, 96, 119, 111, 115},   // base cell 110
	{111, 97, 110, 98, 116, 103, 119},   // base cell 111
	{112, 107, 102, 101, 120, 115, 114}, // base cell 112
	{113, 99, 116, 105, 117, 106, 121},  // base cell 113
	{114, 112, 100, 102, 118, 120, 108}, // base cell 114
	{115, 110, 107, 104, 120, 119, 112}, // base cell 115
	{116, 103, 119, 111, 113, 105, 121}, // base cell 116
	{117, 127, 109, 118, 113, 121, 106}, // base cell 117
	{118, 120, 108, 114, 117, 121, 109}, // base cell 118
	{119, 111, 115, 110, 121, 116, 120}, // base cell 119
	{120, 115, 114, 112, 121, 119, 118}, // base cell 120
	{121, 116, 120, 119, 117, 113, 118}, // base cell 121
}

// baseCellNeighbor60CCWRots gives the rotations into each neighbor's frame.
var baseCellNeighbor60CCWRots = [NumBaseCells][7]int{
	{0, 5, 0, 0, 1, 5, 1},  // base cell 0
	{0, 0, 1, 0, 1, 0, 1},  // base cell 1
	{0, 0, 0, 0, 0, 5, 0},  // base cell 2
	{0, 5, 0, 0, 2, 5, 1},  // base cell 3
	{0, -1, 1, 0, 3, 4, 2}, // base cell 4
	{0, 0, 1, 0, 1, 0, 1},  // base cell 5
	{0, 0, 0, 3, 5, 5, 0},  // base cell 6
	{0, 0, 0, 0, 0, 5, 0},  // base cell 7
	{0, 5, 0, 0, 0, 5, 1},  // base cell 8
	{0, 0, 1, 3, 0, 0, 1},  // base cell 9
	{0, 0, 1, 3, 0, 0, 1},  // base cell 10
	{0, 3, 3, 3, 0, 0, 0},  // base cell 11
	{0, 5, 0, 0, 3, 5, 1},  // base cell 12
	{0, 0, 1, 0, 1, 0, 1},  // base cell 13
	{0, -1, 3, 0, 5, 2, 0}, // base cell 14
	{0, 5, 0, 0, 4, 5, 1},  // base cell 15
	{0, 0, 0, 0, 0, 5, 0},  // base cell 16
	{0, 3, 3, 3, 3, 0, 3},  // base cell 17
	{0, 0, 0, 3, 5, 5, 0},  // base cell 18
	{0, 3, 3, 3, 0, 0, 0},  // base cell 19
	{0, 3, 3, 3, 0, 3, 0},  // base cell 20
	{0, 0, 0, 3, 5, 5, 0},  // base cell 21
	{0, 0, 1, 0, 1, 0, 1},  // base cell 22
	{0, 3, 3, 3, 0, 3, 0},  // base cell 23
	{0, -1, 3, 0, 5, 2, 0}, // base cell 24
	{0, 0, 0, 3, 0, 0, 3},  // base cell 25
	{0, 0, 0, 0, 0, 5, 0},  // base cell 26
	{0, 3, 0, 0, 0, 3, 3},  // base cell 27
	{0, 0, 1, 0, 1, 0, 1},  // base cell 28
	{0, 0, 1, 3, 0, 0, 1},  // base cell 29
	{0, 3, 3, 3, 0, 0, 0},  // base cell 30
	{0, 0, 0, 0, 0, 5, 0},  // base cell 31
	{0, 3, 3, 3, 3, 0, 3},  // base cell 32
	{0, 0, 1, 3, 0, 0, 1},  // base cell 33
	{0, 3, 3, 3, 3, 0, 3},  // base cell 34
	{0, 0, 3, 0, 3, 0, 3},  // base cell 35
	{0, 0, 0, 3, 0, 0, 3},  // base cell 36
	{0, 3, 0, 0, 0, 3, 3},  // base cell 37
	{0, -1, 3, 0, 5, 2, 0}, // base cell 38
	{0, 3, 0, 0, 3, 3, 0},  // base cell 39
	{0, 3, 0, 0, 3, 3, 0},  // base cell 40
	{0, 0, 0, 3, 5, 5, 0},  // base cell 41
	{0, 0, 0, 3, 5, 5, 0},  // base cell 42
	{0, 3, 3, 3, 0, 0, 0},  // base cell 43
	{0, 0, 1, 3, 0, 0, 1},  // base cell 44
	{0, 0, 3, 0, 0, 3, 3},  // base cell 45
	{0, 0, 0, 3, 0, 3, 0},  // base cell 46
	{0, 3, 3, 3, 0, 3, 0},  // base cell 47
	{0, 3, 3, 3, 0, 3, 0},  // base cell 48
	{0, -1, 3, 0, 5, 2, 0}, // base cell 49
	{0, 0, 0, 3, 0, 0, 3},  // base cell 50
	{0, 3, 0, 0, 0, 3, 3},  // base cell 51
	{0, 0, 3, 0, 3, 0, 3},  // base cell 52
	{0, 3, 3, 3, 0, 0, 0},  // base cell 53
	{0, 0, 3, 0, 3, 0, 3},  // base cell 54
	{0, 0, 3, 0, 0, 3, 3},  // base cell 55
	{0, 3, 3, 3, 0, 0, 3},  // base cell 56
	{0, 0, 0, 3, 0, 3, 0},  // base cell 57
	{0, -1, 3, 0, 5, 2, 0}, // base cell 58
	{0, 3, 3, 3, 3, 3, 0},  // base cell 59
	{0, 3, 3, 3, 3, 3, 0},  // base cell 60
	{0, 3, 3, 3, 3, 0, 3},  // base cell 61
	{0, 3, 3, 3, 3, 0, 3},  // base cell 62
	{0, -1, 3, 0, 5, 2, 0}, // base cell 63
	{0, 0, 0, 3, 0, 0, 3},  // base cell 64
	{0, 3, 3, 3, 0, 3, 0},  // base cell 65
	{0, 3, 0, 0, 0, 3, 3},  // base cell 66
	{0, 3, 0, 0, 3, 3, 0},  // base cell 67
	{0, 3, 3, 3, 0, 0, 0},  // base cell 68
	{0, 3, 0, 0, 3, 3, 0},  // base cell 69
	{0, 0, 3, 0, 0, 3, 3},  // base cell 70
	{0, 0, 0, 3, 0, 3, 0},  // base cell 71
	{0, -1, 3, 0, 5, 2, 0}, // base cell 72
	{0, 3, 3, 3, 0, 0, 3},  // base cell 73
	{0, 3, 3, 3, 0, 0, 3},  // base cell 74
	{0, 0, 0, 3, 0, 0, 3},  // base cell 75
	{0, 3, 0, 0, 0, 3, 3},  // base cell 76
	{0, 0, 0, 3, 0, 5, 0},  // base cell 77
	{0, 3, 3, 3, 0, 0, 0},  // base cell 78
	{0, 0, 1, 3, 1, 0, 1},  // base cell 79
	{0, 0, 1, 3, 1, 0, 1},  // base cell 80
	{0, 0, 3, 0, 3, 0, 3},  // base cell 81
	{0, 0, 3, 0, 3, 0, 3},  // base cell 82
	{0, -1, 3, 0, 5, 2, 0}, // base cell 83
	{0, 0, 3, 0, 0, 3, 3},  // base cell 84
	{0, 0, 0, 3, 0, 3, 0},  // base cell 85
	{0, 3, 0, 0, 3, 3, 0},  // base cell 86
	{0, 3, 3, 3, 3, 3, 0},  // base cell 87
	{0, 0, 0, 3, 0, 5, 0},  // base cell 88
	{0, 3, 3, 3, 3, 3, 0},  // base cell 89
	{0, 0, 0, 0, 0, 0, 1},  // base cell 90
	{0, 3, 3, 3, 0, 0, 0},  // base cell 91
	{0, 0, 0, 3, 0, 5, 0},  // base cell 92
	{0, 5, 0, 0, 5, 5, 0},  // base cell 93
	{0, 0, 3, 0, 0, 3, 3},  // base cell 94
	{0, 0, 0, 0, 0, 0, 1},  // base cell 95
	{0, 0, 0, 3, 0, 3, 0},  // base cell 96
	{0, -1, 3, 0, 5, 2, 0}, // base cell 97
	{0, 3, 3, 3, 0, 0, 3},  // base cell 98
	{0, 5, 0, 0, 5, 5, 0},  // base cell 99
	{0, 0, 1, 3, 1, 0, 1},  // base cell 100
	{0, 3, 3, 3, 0, 0, 3},  // base cell 101
	{0, 3, 3, 3, 0, 0, 0},  // base cell 102
	{0, 0, 1, 3, 1, 0, 1},  // base cell 103
	{0, 3, 3, 3, 3, 3, 0},  // base cell 104
	{0, 0, 0, 0, 0, 0, 1},  // base cell 105
	{0, 0, 1, 0, 3, 5, 1},  // base cell 106
	{0, -1, 3, 0, 5, 2, 0}, // base cell 107
	{0, 5, 0, 0, 5, 5, 0},  // base cell 108
	{0, 0, 1, 0, 4, 5, 1},  // base cell 109
	{0, 3, 3, 3, 0, 0, 0},  // base cell 110
	{0, 0, 0, 3, 0, 5, 0},  // base cell 111
	{0, 0, 0, 3, 0, 5, 0},  // base cell 112
	{0, 0, 1, 0, 2, 5, 1},  // base cell 113
	{0, 0, 0, 0, 0, 0, 1},  // base cell 114
	{0, 0, 1, 3, 1, 0, 1},  // base cell 115
	{0, 5, 0, 0, 5, 5, 0},  // base cell 116
	{0, -1, 1, 0, 3, 4, 2}, // base cell 117
	{0, 0, 1, 0, 0, 5, 1},  // base cell 118
	{0, 0, 0, 0, 0, 0, 1},  // base cell 119
	{0, 5, 0, 0, 5, 5, 0},  // base cell 120
	{0, 0, 1, 0, 1, 5, 1},  // base cell 121
}

// baseCellData holds the home position of every base cell.
var baseCellData = [NumBaseCells]baseCellInfo{
	{faceIJK{1, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},   // base cell 0
	{faceIJK{2, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},   // base cell 1
	{faceIJK{1, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},   // base cell 2
	{faceIJK{2, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},   // base cell 3
	{faceIJK{0, coordIJK{2, 0, 0}}, true, [2]int{-1, -1}},  // base cell 4
	{faceIJK{1, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},   // base cell 5
	{faceIJK{1, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},   // base cell 6
	{faceIJK{2, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},   // base cell 7
	{faceIJK{0, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},   // base cell 8
	{faceIJK{2, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},   // base cell 9
	{faceIJK{1, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},   // base cell 10
	{faceIJK{1, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},   // base cell 11
	{faceIJK{3, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},   // base cell 12
	{faceIJK{3, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},   // base cell 13
	{faceIJK{11, coordIJK{2, 0, 0}}, true, [2]int{2, 6}},   // base cell 14
	{faceIJK{4, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},   // base cell 15
	{faceIJK{0, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},   // base cell 16
	{faceIJK{6, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},   // base cell 17
	{faceIJK{0, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},   // base cell 18
	{faceIJK{2, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},   // base cell 19
	{faceIJK{7, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},   // base cell 20
	{faceIJK{2, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},   // base cell 21
	{faceIJK{0, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},   // base cell 22
	{faceIJK{6, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},   // base cell 23
	{faceIJK{10, coordIJK{2, 0, 0}}, true, [2]int{1, 5}},   // base cell 24
	{faceIJK{6, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},   // base cell 25
	{faceIJK{3, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},   // base cell 26
	{faceIJK{11, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},  // base cell 27
	{faceIJK{4, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},   // base cell 28
	{faceIJK{3, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},   // base cell 29
	{faceIJK{0, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},   // base cell 30
	{faceIJK{4, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},   // base cell 31
	{faceIJK{5, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},   // base cell 32
	{faceIJK{0, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},   // base cell 33
	{faceIJK{7, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},   // base cell 34
	{faceIJK{11, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},  // base cell 35
	{faceIJK{7, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},   // base cell 36
	{faceIJK{10, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},  // base cell 37
	{faceIJK{12, coordIJK{2, 0, 0}}, true, [2]int{3, 7}},   // base cell 38
	{faceIJK{6, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},   // base cell 39
	{faceIJK{7, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},   // base cell 40
	{faceIJK{4, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},   // base cell 41
	{faceIJK{3, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},   // base cell 42
	{faceIJK{3, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},   // base cell 43
	{faceIJK{4, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},   // base cell 44
	{faceIJK{6, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},   // base cell 45
	{faceIJK{11, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},  // base cell 46
	{faceIJK{8, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},   // base cell 47
	{faceIJK{5, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},   // base cell 48
	{faceIJK{14, coordIJK{2, 0, 0}}, true, [2]int{0, 9}},   // base cell 49
	{faceIJK{5, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},   // base cell 50
	{faceIJK{12, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},  // base cell 51
	{faceIJK{10, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},  // base cell 52
	{faceIJK{4, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},   // base cell 53
	{faceIJK{12, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},  // base cell 54
	{faceIJK{7, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},   // base cell 55
	{faceIJK{11, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},  // base cell 56
	{faceIJK{10, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},  // base cell 57
	{faceIJK{13, coordIJK{2, 0, 0}}, true, [2]int{4, 8}},   // base cell 58
	{faceIJK{10, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},  // base cell 59
	{faceIJK{11, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},  // base cell 60
	{faceIJK{9, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},   // base cell 61
	{faceIJK{8, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},   // base cell 62
	{faceIJK{6, coordIJK{2, 0, 0}}, true, [2]int{11, 15}},  // base cell 63
	{faceIJK{8, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},   // base cell 64
	{faceIJK{9, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},   // base cell 65
	{faceIJK{14, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},  // base cell 66
	{faceIJK{5, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},   // base cell 67
	{faceIJK{16, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},  // base cell 68
	{faceIJK{8, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},   // base cell 69
	{faceIJK{5, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},   // base cell 70
	{faceIJK{12, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},  // base cell 71
	{faceIJK{7, coordIJK{2, 0, 0}}, true, [2]int{12, 16}},  // base cell 72
	{faceIJK{12, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},  // base cell 73
	{faceIJK{10, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},  // base cell 74
	{faceIJK{9, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},   // base cell 75
	{faceIJK{13, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},  // base cell 76
	{faceIJK{16, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},  // base cell 77
	{faceIJK{15, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},  // base cell 78
	{faceIJK{15, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},  // base cell 79
	{faceIJK{16, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},  // base cell 80
	{faceIJK{14, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},  // base cell 81
	{faceIJK{13, coordIJK{1, 1, 0}}, false, [2]int{0, 0}},  // base cell 82
	{faceIJK{5, coordIJK{2, 0, 0}}, true, [2]int{10, 19}},  // base cell 83
	{faceIJK{8, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},   // base cell 84
	{faceIJK{14, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},  // base cell 85
	{faceIJK{9, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},   // base cell 86
	{faceIJK{14, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},  // base cell 87
	{faceIJK{17, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},  // base cell 88
	{faceIJK{12, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},  // base cell 89
	{faceIJK{16, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},  // base cell 90
	{faceIJK{17, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},  // base cell 91
	{faceIJK{15, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},  // base cell 92
	{faceIJK{16, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},  // base cell 93
	{faceIJK{9, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},   // base cell 94
	{faceIJK{15, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},  // base cell 95
	{faceIJK{13, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},  // base cell 96
	{faceIJK{8, coordIJK{2, 0, 0}}, true, [2]int{13, 17}},  // base cell 97
	{faceIJK{13, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},  // base cell 98
	{faceIJK{17, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},  // base cell 99
	{faceIJK{19, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},  // base cell 100
	{faceIJK{14, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},  // base cell 101
	{faceIJK{19, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},  // base cell 102
	{faceIJK{17, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},  // base cell 103
	{faceIJK{13, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},  // base cell 104
	{faceIJK{17, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},  // base cell 105
	{faceIJK{16, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},  // base cell 106
	{faceIJK{9, coordIJK{2, 0, 0}}, true, [2]int{14, 18}},  // base cell 107
	{faceIJK{15, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},  // base cell 108
	{faceIJK{15, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},  // base cell 109
	{faceIJK{18, coordIJK{0, 1, 1}}, false, [2]int{0, 0}},  // base cell 110
	{faceIJK{18, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},  // base cell 111
	{faceIJK{19, coordIJK{0, 0, 1}}, false, [2]int{0, 0}},  // base cell 112
	{faceIJK{17, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},  // base cell 113
	{faceIJK{19, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},  // base cell 114
	{faceIJK{18, coordIJK{0, 1, 0}}, false, [2]int{0, 0}},  // base cell 115
	{faceIJK{18, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},  // base cell 116
	{faceIJK{19, coordIJK{2, 0, 0}}, true, [2]int{-1, -1}}, // base cell 117
	{faceIJK{19, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},  // base cell 118
	{faceIJK{18, coordIJK{0, 0, 0}}, false, [2]int{0, 0}},  // base cell 119
	{faceIJK{19, coordIJK{1, 0, 1}}, false, [2]int{0, 0}},  // base cell 120
	{faceIJK{18, coordIJK{1, 0, 0}}, false, [2]int{0, 0}},  // base cell 121
}
