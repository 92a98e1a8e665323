package routines

// TemplateExercise is one pre-filled exercise of the starter routine.
type TemplateExercise struct {
	Name         string
	SeriesTarget int
	RepsTarget   string
}

// TemplateDay is one pre-filled day of the starter routine.
type TemplateDay struct {
	DayIndex int
	Title    string
	Exs      []TemplateExercise
}

// DefaultRoutineTemplate seeds the first routine of a new user.
var DefaultRoutineTemplate = []TemplateDay{
	{
		DayIndex: 1, Title: "Pierna & Glúteos",
		Exs: []TemplateExercise{
			{Name: "Sentadilla", SeriesTarget: 4, RepsTarget: "10–12"},
			{Name: "Hip Thrust", SeriesTarget: 4, RepsTarget: "10–12"},
			{Name: "Prensa", SeriesTarget: 3, RepsTarget: "12"},
			{Name: "Zancadas", SeriesTarget: 3, RepsTarget: "10 por pierna"},
			{Name: "Extensión de cuádriceps", SeriesTarget: 3, RepsTarget: "12–15"},
			{Name: "Abducción de cadera", SeriesTarget: 3, RepsTarget: "15–20"},
		},
	},
	{
		DayIndex: 2, Title: "Espalda & Hombros",
		Exs: []TemplateExercise{
			{Name: "Jalón al pecho", SeriesTarget: 4, RepsTarget: "10–12"},
			{Name: "Remo", SeriesTarget: 3, RepsTarget: "10–12"},
			{Name: "Face Pull", SeriesTarget: 3, RepsTarget: "12–15"},
			{Name: "Press hombro", SeriesTarget: 3, RepsTarget: "10–12"},
			{Name: "Elevaciones laterales", SeriesTarget: 3, RepsTarget: "12–15"},
			{Name: "Plancha abdominal", SeriesTarget: 3, RepsTarget: "30–45 s"},
		},
	},
	{
		DayIndex: 3, Title: "Pierna & Glúteos (Glúteo focus)",
		Exs: []TemplateExercise{
			{Name: "Peso muerto rumano", SeriesTarget: 4, RepsTarget: "10–12"},
			{Name: "Sentadilla sumo", SeriesTarget: 3, RepsTarget: "12"},
			{Name: "Step‑up al banco", SeriesTarget: 3, RepsTarget: "10 por pierna"},
			{Name: "Curl femoral", SeriesTarget: 3, RepsTarget: "12–15"},
			{Name: "Patada de glúteo", SeriesTarget: 3, RepsTarget: "15"},
			{Name: "Crunch abdominal", SeriesTarget: 3, RepsTarget: "15–20"},
		},
	},
	{
		DayIndex: 4, Title: "Pecho & Brazos",
		Exs: []TemplateExercise{
			{Name: "Press pecho", SeriesTarget: 3, RepsTarget: "10–12"},
			{Name: "Aperturas de pecho", SeriesTarget: 3, RepsTarget: "12"},
			{Name: "Curl de bíceps", SeriesTarget: 3, RepsTarget: "10–12"},
			{Name: "Extensión de tríceps", SeriesTarget: 3, RepsTarget: "10–12"},
			{Name: "Curl martillo", SeriesTarget: 3, RepsTarget: "12"},
			{Name: "Tríceps en banco", SeriesTarget: 3, RepsTarget: "12–15"},
		},
	},
}
