package bank

// questions is the static question bank, keyed by subject.
var questions = map[string][]Question{
	SubjectPhysics: {
		{
			ID:   1,
			Text: "Which formula expresses Newton's second law?",
			Options: map[string]string{
				"A": "F = ma",
				"B": "E = mc²",
				"C": "P = mv",
				"D": "W = Fs",
			},
			Correct:     "A",
			Explanation: "Newton's second law: force equals mass times acceleration (F = ma).",
			Hint:        "It relates force, mass and the acceleration of a body.",
			Difficulty:  2,
		},
		{
			ID:   2,
			Text: "What is the speed of light in a vacuum?",
			Options: map[string]string{
				"A": "3 × 10⁸ m/s",
				"B": "3 × 10⁶ m/s",
				"C": "3 × 10¹⁰ m/s",
				"D": "3 × 10⁴ m/s",
			},
			Correct:     "A",
			Explanation: "Light travels at about 3 × 10⁸ m/s (300,000 km/s) in a vacuum.",
			Hint:        "One of the fundamental constants of physics.",
			Difficulty:  1,
		},
		{
			ID:   3,
			Text: "What is the unit of electrical resistance?",
			Options: map[string]string{
				"A": "Ampere (A)",
				"B": "Volt (V)",
				"C": "Ohm (Ω)",
				"D": "Watt (W)",
			},
			Correct:     "C",
			Explanation: "Resistance is measured in ohms (Ω), named after Georg Ohm.",
			Hint:        "The unit is named after a German physicist.",
			Difficulty:  1,
		},
		{
			ID:   4,
			Text: "If speed doubles, how does kinetic energy change?",
			Options: map[string]string{
				"A": "Doubles",
				"B": "Quadruples",
				"C": "Stays the same",
				"D": "Halves",
			},
			Correct:     "B",
			Explanation: "Kinetic energy is proportional to the square of speed (E = mv²/2), so doubling speed quadruples the energy.",
			Hint:        "Kinetic energy depends on the square of speed.",
			Difficulty:  3,
		},
		{
			ID:   5,
			Text: "Which law relates the pressure, volume and temperature of an ideal gas?",
			Options: map[string]string{
				"A": "Ohm's law",
				"B": "Hooke's law",
				"C": "The ideal gas law",
				"D": "Archimedes' principle",
			},
			Correct:     "C",
			Explanation: "The ideal gas law (PV = nRT) describes the state of an ideal gas.",
			Hint:        "It is the equation of state of an ideal gas.",
			Difficulty:  2,
		},
		{
			ID:   6,
			Text: "What is the period of an oscillation?",
			Options: map[string]string{
				"A": "The time of one complete oscillation",
				"B": "The number of oscillations per second",
				"C": "The largest displacement from equilibrium",
				"D": "The propagation speed of the wave",
			},
			Correct:     "A",
			Explanation: "The period is the time taken for one complete oscillation.",
			Hint:        "It is measured in seconds.",
			Difficulty:  1,
		},
		{
			ID:   7,
			Text: "What is the formula of the law of universal gravitation?",
			Options: map[string]string{
				"A": "F = kx",
				"B": "F = G(m₁m₂)/r²",
				"C": "F = ma",
				"D": "F = qE",
			},
			Correct:     "B",
			Explanation: "Newton's law of universal gravitation: F = G(m₁m₂)/r², where G is the gravitational constant.",
			Hint:        "The attractive force falls off with the square of the distance.",
			Difficulty:  2,
		},
		{
			ID:   8,
			Text: "What is the momentum of a body?",
			Options: map[string]string{
				"A": "mv",
				"B": "ma",
				"C": "mv²/2",
				"D": "mgh",
			},
			Correct:     "A",
			Explanation: "Momentum equals mass times velocity (p = mv).",
			Hint:        "A vector quantity describing the motion of a body.",
			Difficulty:  2,
		},
		{
			ID:   9,
			Text: "Under which condition is a body weightless?",
			Options: map[string]string{
				"A": "When no force acts on it",
				"B": "When it moves at constant speed",
				"C": "During free fall",
				"D": "Whenever it is in space",
			},
			Correct:     "C",
			Explanation: "Weightlessness occurs in free fall, when gravity is the only force acting.",
			Hint:        "You would feel it in a freely falling elevator.",
			Difficulty:  3,
		},
		{
			ID:   10,
			Text: "Which quantity characterizes the inertia of a body?",
			Options: map[string]string{
				"A": "Weight",
				"B": "Mass",
				"C": "Volume",
				"D": "Density",
			},
			Correct:     "B",
			Explanation: "Mass characterizes inertia — the resistance of a body to changes in its velocity.",
			Hint:        "This quantity does not depend on where the body is.",
			Difficulty:  1,
		},
	},
	SubjectMathematics: {
		{
			ID:   11,
			Text: "What is sin(90°)?",
			Options: map[string]string{
				"A": "0",
				"B": "1",
				"C": "√2/2",
				"D": "√3/2",
			},
			Correct:     "B",
			Explanation: "sin(90°) = 1, since 90° corresponds to a quarter of the unit circle.",
			Hint:        "90° is a right angle.",
			Difficulty:  1,
		},
		{
			ID:   12,
			Text: "What is the derivative of f(x) = x²?",
			Options: map[string]string{
				"A": "x",
				"B": "2x",
				"C": "x²",
				"D": "2x²",
			},
			Correct:     "B",
			Explanation: "The power rule gives (xⁿ)' = n·xⁿ⁻¹, so (x²)' = 2x.",
			Hint:        "Apply the power rule for differentiation.",
			Difficulty:  2,
		},
		{
			ID:   13,
			Text: "How many roots does the equation x² - 4 = 0 have?",
			Options: map[string]string{
				"A": "0",
				"B": "1",
				"C": "2",
				"D": "3",
			},
			Correct:     "C",
			Explanation: "x² = 4 gives x = ±2, so the equation has two roots: x₁ = 2, x₂ = -2.",
			Hint:        "Factor it as a difference of squares.",
			Difficulty:  1,
		},
		{
			ID:   14,
			Text: "What is log₂(8)?",
			Options: map[string]string{
				"A": "2",
				"B": "3",
				"C": "4",
				"D": "8",
			},
			Correct:     "B",
			Explanation: "log₂(8) = 3, because 2³ = 8.",
			Hint:        "To what power must 2 be raised to get 8?",
			Difficulty:  2,
		},
		{
			ID:   15,
			Text: "What is the formula for the area of a circle?",
			Options: map[string]string{
				"A": "πr",
				"B": "2πr",
				"C": "πr²",
				"D": "πd",
			},
			Correct:     "C",
			Explanation: "The area of a circle is πr², where r is the radius.",
			Hint:        "The area is proportional to the square of the radius.",
			Difficulty:  1,
		},
		{
			ID:   16,
			Text: "What is the sum of the interior angles of a triangle?",
			Options: map[string]string{
				"A": "90°",
				"B": "180°",
				"C": "270°",
				"D": "360°",
			},
			Correct:     "B",
			Explanation: "The angles of any triangle always sum to 180°.",
			Hint:        "One of the basic theorems of geometry.",
			Difficulty:  1,
		},
		{
			ID:   17,
			Text: "What is the root of the equation 2x + 6 = 14?",
			Options: map[string]string{
				"A": "2",
				"B": "4",
				"C": "6",
				"D": "8",
			},
			Correct:     "B",
			Explanation: "2x + 6 = 14, so 2x = 8 and x = 4.",
			Hint:        "Move 6 to the right side and divide by 2.",
			Difficulty:  1,
		},
		{
			ID:   18,
			Text: "What is cos(0°)?",
			Options: map[string]string{
				"A": "0",
				"B": "1",
				"C": "-1",
				"D": "√2/2",
			},
			Correct:     "B",
			Explanation: "cos(0°) = 1.",
			Hint:        "0° points along the positive x axis.",
			Difficulty:  1,
		},
		{
			ID:   19,
			Text: "What is the formula for the n-th term of an arithmetic progression?",
			Options: map[string]string{
				"A": "aₙ = a₁ + (n-1)d",
				"B": "aₙ = a₁ · qⁿ⁻¹",
				"C": "aₙ = a₁ + nd",
				"D": "aₙ = a₁ · qⁿ",
			},
			Correct:     "A",
			Explanation: "In an arithmetic progression aₙ = a₁ + (n-1)d, where d is the common difference.",
			Hint:        "Each term is obtained by adding a constant difference.",
			Difficulty:  2,
		},
		{
			ID:   20,
			Text: "What is ∫x dx?",
			Options: map[string]string{
				"A": "x + C",
				"B": "x²/2 + C",
				"C": "x² + C",
				"D": "1 + C",
			},
			Correct:     "B",
			Explanation: "∫x dx = x²/2 + C, where C is an arbitrary constant.",
			Hint:        "Integration is the inverse of differentiation.",
			Difficulty:  2,
		},
	},
}
