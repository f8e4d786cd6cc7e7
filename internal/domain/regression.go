package domain

// StatPair es una celda etiqueta/valor de las tablas de resumen OLS.
type StatPair struct {
	Label string
	Value string
}

// Coefficient es una fila de la tabla de coeficientes.
type Coefficient struct {
	Variable string
	Coef     string
	StdErr   string
	Z        string
	PValue   string
	Lower    string
	Upper    string
}

// RegressionSummary replica la salida de statsmodels usada en el estudio.
type RegressionSummary struct {
	Model        [][2]StatPair
	Coefficients []Coefficient
	Diagnostics  [][2]StatPair
	Notes        []string
}
