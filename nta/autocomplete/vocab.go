package autocomplete

// Suggestion is one completion candidate with its semantic kind. The kind
// serializes under the "type" key for wire compatibility with editors.
type Suggestion struct {
	Name string  `json:"name"`
	Kind SymKind `json:"type"`
}

// Static vocabularies seeded by context before user symbols are added.
// Immutable process-wide data.

var guardItems = []Suggestion{
	{"true", KindUnknown},
	{"false", KindUnknown},
}

var queriesItems = []Suggestion{
	{"int", KindType},
	{"true", KindUnknown},
	{"false", KindUnknown},
	{"forall", KindUnknown},
	{"exists", KindUnknown},
}

var parameterItems = []Suggestion{
	{"int", KindType},
	{"double", KindType},
	{"clock", KindType},
	{"chan", KindType},
	{"bool", KindType},
	{"broadcast", KindUnknown},
	{"const", KindUnknown},
	{"urgent", KindUnknown},
}

var defaultItems = []Suggestion{
	{"int", KindType},
	{"double", KindType},
	{"clock", KindType},
	{"chan", KindType},
	{"bool", KindType},
	{"broadcast", KindUnknown},
	{"const", KindUnknown},
	{"urgent", KindUnknown},
	{"void", KindUnknown},
	{"meta", KindUnknown},
	{"true", KindUnknown},
	{"false", KindUnknown},
	{"forall", KindUnknown},
	{"exists", KindUnknown},
	{"return", KindUnknown},
	{"typedef", KindUnknown},
	{"struct", KindUnknown},
}

// builtinFunctions are the expression-language built-ins: math,
// trigonometric, rounding, floating-point utilities, and the random
// generators.
var builtinFunctions = []Suggestion{
	{"abs", KindFunction},
	{"fabs", KindFunction},
	{"fmod", KindFunction},
	{"fma", KindFunction},
	{"fmax", KindFunction},
	{"fmin", KindFunction},
	{"exp", KindFunction},
	{"exp2", KindFunction},
	{"expm1", KindFunction},
	{"ln", KindFunction},
	{"log", KindFunction},
	{"log10", KindFunction},
	{"log2", KindFunction},
	{"log1p", KindFunction},
	{"pow", KindFunction},
	{"sqrt", KindFunction},
	{"cbrt", KindFunction},
	{"hypot", KindFunction},
	{"sin", KindFunction},
	{"cos", KindFunction},
	{"tan", KindFunction},
	{"asin", KindFunction},
	{"acos", KindFunction},
	{"atan", KindFunction},
	{"atan2", KindFunction},
	{"sinh", KindFunction},
	{"cosh", KindFunction},
	{"tanh", KindFunction},
	{"asinh", KindFunction},
	{"acosh", KindFunction},
	{"atanh", KindFunction},
	{"erf", KindFunction},
	{"erfc", KindFunction},
	{"tgamma", KindFunction},
	{"lgamma", KindFunction},
	{"ceil", KindFunction},
	{"floor", KindFunction},
	{"trunc", KindFunction},
	{"round", KindFunction},
	{"fint", KindFunction},
	{"ldexp", KindFunction},
	{"ilogb", KindFunction},
	{"logb", KindFunction},
	{"nextafter", KindFunction},
	{"copysign", KindFunction},
	{"signbit", KindFunction},
	{"random", KindFunction},
	{"random_normal", KindFunction},
	{"random_poisson", KindFunction},
	{"random_arcsine", KindFunction},
	{"random_beta", KindFunction},
	{"random_gamma", KindFunction},
	{"tri", KindFunction},
	{"random_weibull", KindFunction},
}
