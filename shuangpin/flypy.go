package shuangpin

// Flypy is the 小鹤双拼 layout.
var Flypy = newScheme("flypy", flypyInitials, flypyFinals, zeroInitialFinals)

func init() {
	register(Flypy)
}

var flypyInitials = []keyEntry{
	// 翘舌音
	{"zh", "v"},
	{"ch", "i"},
	{"sh", "u"},
	// single-letter initials map to themselves
	{"b", "b"}, {"p", "p"}, {"m", "m"}, {"f", "f"},
	{"d", "d"}, {"t", "t"}, {"n", "n"}, {"l", "l"},
	{"g", "g"}, {"k", "k"}, {"h", "h"},
	{"j", "j"}, {"q", "q"}, {"x", "x"},
	{"r", "r"}, {"z", "z"}, {"c", "c"}, {"s", "s"},
	{"y", "y"}, {"w", "w"},
}

// flypyFinals lists one key per final. Several finals share a key when
// they never follow the same initial (ing/uai, iang/uang, ia/ua, ong/iong).
var flypyFinals = []keyEntry{
	{"a", "a"},
	{"o", "o"},
	{"e", "e"},
	{"i", "i"},
	{"u", "u"},
	{"v", "v"},
	{"iu", "q"},
	{"ei", "w"},
	{"uan", "r"},
	{"van", "r"},
	{"ue", "t"},
	{"ve", "t"},
	{"un", "y"},
	{"vn", "y"},
	{"uo", "o"},
	{"ie", "p"},
	{"ong", "s"},
	{"iong", "s"},
	{"ai", "d"},
	{"en", "f"},
	{"eng", "g"},
	{"ang", "h"},
	{"an", "j"},
	{"ing", "k"},
	{"uai", "k"},
	{"iang", "l"},
	{"uang", "l"},
	{"ou", "z"},
	{"ia", "x"},
	{"ua", "x"},
	{"ao", "c"},
	{"ui", "v"},
	{"in", "b"},
	{"iao", "n"},
	{"ian", "m"},
}

// zeroInitialFinals are the finals that form a syllable on their own.
var zeroInitialFinals = []string{
	"a", "o", "e",
	"ai", "ei", "ao", "ou", "an", "en", "er",
	"ang", "eng",
}
