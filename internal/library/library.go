package library

// Entry is one row of the shared exercise catalog. The catalog is global,
// user-independent, and seeded once at database initialization.
type Entry struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	TargetMuscle    string `json:"targetMuscle"`
	Equipment       string `json:"equipment"`
	DifficultyLevel string `json:"difficultyLevel"`
}

const (
	DifficultyBeginner     = "Principiante"
	DifficultyIntermediate = "Intermedio"
	DifficultyAdvanced     = "Avanzado"
)

// seedEntries is the fixed catalog loaded on first startup. Names are
// unique, re-seeding is a no-op.
var seedEntries = []Entry{
	// Pecho
	{Name: "Press Banca", TargetMuscle: "Pecho", Equipment: "Barra", DifficultyLevel: DifficultyIntermediate},
	{Name: "Press Inclinado con Mancuernas", TargetMuscle: "Pecho", Equipment: "Mancuernas", DifficultyLevel: DifficultyIntermediate},
	{Name: "Aperturas con Mancuernas", TargetMuscle: "Pecho", Equipment: "Mancuernas", DifficultyLevel: DifficultyBeginner},
	{Name: "Flexiones", TargetMuscle: "Pecho", Equipment: "Peso corporal", DifficultyLevel: DifficultyBeginner},
	{Name: "Press de Pecho en Máquina", TargetMuscle: "Pecho", Equipment: "Máquina", DifficultyLevel: DifficultyBeginner},
	{Name: "Cruce de Poleas", TargetMuscle: "Pecho", Equipment: "Polea", DifficultyLevel: DifficultyIntermediate},
	{Name: "Press Declinado", TargetMuscle: "Pecho", Equipment: "Barra", DifficultyLevel: DifficultyAdvanced},
	{Name: "Fondos en Paralelas", TargetMuscle: "Pecho", Equipment: "Peso corporal", DifficultyLevel: DifficultyAdvanced},

	// Espalda
	{Name: "Dominadas", TargetMuscle: "Espalda", Equipment: "Peso corporal", DifficultyLevel: DifficultyAdvanced},
	{Name: "Jalón al Pecho", TargetMuscle: "Espalda", Equipment: "Polea", DifficultyLevel: DifficultyBeginner},
	{Name: "Remo con Barra", TargetMuscle: "Espalda", Equipment: "Barra", DifficultyLevel: DifficultyIntermediate},
	{Name: "Remo con Mancuerna", TargetMuscle: "Espalda", Equipment: "Mancuernas", DifficultyLevel: DifficultyBeginner},
	{Name: "Remo en Polea Baja", TargetMuscle: "Espalda", Equipment: "Polea", DifficultyLevel: DifficultyIntermediate},
	{Name: "Peso Muerto", TargetMuscle: "Espalda", Equipment: "Barra", DifficultyLevel: DifficultyAdvanced},
	{Name: "Pullover en Polea", TargetMuscle: "Espalda", Equipment: "Polea", DifficultyLevel: DifficultyIntermediate},
	{Name: "Remo en Máquina", TargetMuscle: "Espalda", Equipment: "Máquina", DifficultyLevel: DifficultyBeginner},

	// Pierna
	{Name: "Sentadilla", TargetMuscle: "Pierna", Equipment: "Barra", DifficultyLevel: DifficultyIntermediate},
	{Name: "Prensa de Piernas", TargetMuscle: "Pierna", Equipment: "Máquina", DifficultyLevel: DifficultyBeginner},
	{Name: "Zancadas", TargetMuscle: "Pierna", Equipment: "Mancuernas", DifficultyLevel: DifficultyIntermediate},
	{Name: "Extensión de Cuádriceps", TargetMuscle: "Pierna", Equipment: "Máquina", DifficultyLevel: DifficultyBeginner},
	{Name: "Curl Femoral Tumbado", TargetMuscle: "Pierna", Equipment: "Máquina", DifficultyLevel: DifficultyBeginner},
	{Name: "Peso Muerto Rumano", TargetMuscle: "Pierna", Equipment: "Barra", DifficultyLevel: DifficultyIntermediate},
	{Name: "Hip Thrust", TargetMuscle: "Pierna", Equipment: "Barra", DifficultyLevel: DifficultyIntermediate},
	{Name: "Sentadilla Búlgara", TargetMuscle: "Pierna", Equipment: "Mancuernas", DifficultyLevel: DifficultyAdvanced},
	{Name: "Elevación de Gemelos", TargetMuscle: "Pierna", Equipment: "Máquina", DifficultyLevel: DifficultyBeginner},
	{Name: "Sentadilla Frontal", TargetMuscle: "Pierna", Equipment: "Barra", DifficultyLevel: DifficultyAdvanced},

	// Hombro
	{Name: "Press Militar", TargetMuscle: "Hombro", Equipment: "Barra", DifficultyLevel: DifficultyIntermediate},
	{Name: "Press de Hombros con Mancuernas", TargetMuscle: "Hombro", Equipment: "Mancuernas", DifficultyLevel: DifficultyBeginner},
	{Name: "Elevaciones Laterales", TargetMuscle: "Hombro", Equipment: "Mancuernas", DifficultyLevel: DifficultyBeginner},
	{Name: "Elevaciones Frontales", TargetMuscle: "Hombro", Equipment: "Mancuernas", DifficultyLevel: DifficultyBeginner},
	{Name: "Pájaros", TargetMuscle: "Hombro", Equipment: "Mancuernas", DifficultyLevel: DifficultyIntermediate},
	{Name: "Face Pull", TargetMuscle: "Hombro", Equipment: "Polea", DifficultyLevel: DifficultyIntermediate},
	{Name: "Press Arnold", TargetMuscle: "Hombro", Equipment: "Mancuernas", DifficultyLevel: DifficultyAdvanced},

	// Bíceps
	{Name: "Curl con Barra", TargetMuscle: "Bíceps", Equipment: "Barra", DifficultyLevel: DifficultyBeginner},
	{Name: "Curl con Mancuernas", TargetMuscle: "Bíceps", Equipment: "Mancuernas", DifficultyLevel: DifficultyBeginner},
	{Name: "Curl Martillo", TargetMuscle: "Bíceps", Equipment: "Mancuernas", DifficultyLevel: DifficultyIntermediate},
	{Name: "Curl en Polea", TargetMuscle: "Bíceps", Equipment: "Polea", DifficultyLevel: DifficultyIntermediate},
	{Name: "Curl Predicador", TargetMuscle: "Bíceps", Equipment: "Máquina", DifficultyLevel: DifficultyIntermediate},
	{Name: "Curl Concentrado", TargetMuscle: "Bíceps", Equipment: "Mancuernas", DifficultyLevel: DifficultyAdvanced},

	// Tríceps
	{Name: "Extensión de Tríceps en Polea", TargetMuscle: "Tríceps", Equipment: "Polea", DifficultyLevel: DifficultyBeginner},
	{Name: "Press Francés", TargetMuscle: "Tríceps", Equipment: "Barra", DifficultyLevel: DifficultyIntermediate},
	{Name: "Fondos entre Bancos", TargetMuscle: "Tríceps", Equipment: "Peso corporal", DifficultyLevel: DifficultyBeginner},
	{Name: "Patada de Tríceps", TargetMuscle: "Tríceps", Equipment: "Mancuernas", DifficultyLevel: DifficultyIntermediate},
	{Name: "Extensión sobre la Cabeza", TargetMuscle: "Tríceps", Equipment: "Mancuernas", DifficultyLevel: DifficultyIntermediate},
	{Name: "Press Cerrado", TargetMuscle: "Tríceps", Equipment: "Barra", DifficultyLevel: DifficultyAdvanced},

	// Core
	{Name: "Plancha", TargetMuscle: "Core", Equipment: "Peso corporal", DifficultyLevel: DifficultyBeginner},
	{Name: "Crunch Abdominal", TargetMuscle: "Core", Equipment: "Peso corporal", DifficultyLevel: DifficultyBeginner},
	{Name: "Elevación de Piernas", TargetMuscle: "Core", Equipment: "Peso corporal", DifficultyLevel: DifficultyIntermediate},
	{Name: "Rueda Abdominal", TargetMuscle: "Core", Equipment: "Accesorio", DifficultyLevel: DifficultyAdvanced},
	{Name: "Plancha Lateral", TargetMuscle: "Core", Equipment: "Peso corporal", DifficultyLevel: DifficultyIntermediate},
	{Name: "Crunch en Polea", TargetMuscle: "Core", Equipment: "Polea", DifficultyLevel: DifficultyIntermediate},

	// Glúteo
	{Name: "Patada de Glúteo en Polea", TargetMuscle: "Glúteo", Equipment: "Polea", DifficultyLevel: DifficultyBeginner},
	{Name: "Abducción de Cadera", TargetMuscle: "Glúteo", Equipment: "Máquina", DifficultyLevel: DifficultyBeginner},
	{Name: "Puente de Glúteos", TargetMuscle: "Glúteo", Equipment: "Peso corporal", DifficultyLevel: DifficultyBeginner},
	{Name: "Hip Thrust a Una Pierna", TargetMuscle: "Glúteo", Equipment: "Peso corporal", DifficultyLevel: DifficultyAdvanced},
}

// SeedEntries returns a copy of the fixed catalog.
func SeedEntries() []Entry {
	entries := make([]Entry, len(seedEntries))
	copy(entries, seedEntries)
	return entries
}
