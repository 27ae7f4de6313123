package bank

// materials is the static study material catalog, keyed by subject.
var materials = map[string][]Material{
	SubjectPhysics: {
		{
			ID:          1,
			Title:       "Foundations of Mechanics",
			Type:        "video",
			Topic:       "Mechanics",
			Description: "Core concepts and laws of classical mechanics",
			Duration:    "45 min",
			Difficulty:  1,
		},
		{
			ID:          2,
			Title:       "Newton's Laws",
			Type:        "pdf",
			Topic:       "Mechanics",
			Description: "Newton's three laws and how to apply them",
			Pages:       15,
			Difficulty:  2,
		},
		{
			ID:          3,
			Title:       "Electric Current",
			Type:        "video",
			Topic:       "Electricity",
			Description: "Basics of electric current and Ohm's law",
			Duration:    "30 min",
			Difficulty:  2,
		},
	},
	SubjectMathematics: {
		{
			ID:          4,
			Title:       "Trigonometry Basics",
			Type:        "video",
			Topic:       "Trigonometry",
			Description: "Trigonometric functions and their properties",
			Duration:    "50 min",
			Difficulty:  2,
		},
		{
			ID:          5,
			Title:       "Derivatives",
			Type:        "pdf",
			Topic:       "Calculus",
			Description: "Definition of the derivative and rules for computing it",
			Pages:       20,
			Difficulty:  3,
		},
		{
			ID:          6,
			Title:       "Quadratic Equations",
			Type:        "video",
			Topic:       "Algebra",
			Description: "Methods for solving quadratic equations",
			Duration:    "25 min",
			Difficulty:  1,
		},
	},
}
