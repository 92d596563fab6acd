// File path: internal/question/seed.go
package question

// seedQuestions returns the starter corpus installed into an empty store.
func seedQuestions() []Question {
	return []Question{
		{
			ID:   "phy-001",
			Text: "A body of mass 2 kg accelerates at 3 m/s². What net force acts on it?",
			Options: OptionList{
				{Text: "6 N", IsCorrect: true},
				{Text: "1.5 N"},
				{Text: "5 N"},
				{Text: "9 N"},
			},
			CorrectAnswer: "6 N",
			Explanation:   "Newton's second law: F = ma = 2 kg × 3 m/s² = 6 N.",
			Subject:       "Physics",
			Topics:        StringList{"mechanics"},
			Difficulty:    DifficultyEasy,
			Provenance:    ProvenanceDB,
		},
		{
			ID:   "phy-002",
			Text: "Which quantity is conserved when no external force acts on a system of colliding bodies?",
			Options: OptionList{
				{Text: "Kinetic energy"},
				{Text: "Momentum", IsCorrect: true},
				{Text: "Velocity"},
				{Text: "Acceleration"},
			},
			CorrectAnswer: "Momentum",
			Explanation:   "Total linear momentum is conserved in the absence of external forces; kinetic energy is only conserved in elastic collisions.",
			Subject:       "Physics",
			Topics:        StringList{"mechanics"},
			Difficulty:    DifficultyMedium,
			Provenance:    ProvenanceDB,
		},
		{
			ID:   "phy-003",
			Text: "A circuit carries a current of 2 A through a resistance of 10 Ω. What is the voltage across the resistor?",
			Options: OptionList{
				{Text: "5 V"},
				{Text: "12 V"},
				{Text: "20 V", IsCorrect: true},
				{Text: "0.2 V"},
			},
			CorrectAnswer: "20 V",
			Explanation:   "Ohm's law: V = IR = 2 A × 10 Ω = 20 V.",
			Subject:       "Physics",
			Topics:        StringList{"electricity"},
			Difficulty:    DifficultyEasy,
			Provenance:    ProvenanceDB,
		},
		{
			ID:   "phy-004",
			Text: "Light passes from air into water. What happens to its wavelength and frequency?",
			Options: OptionList{
				{Text: "Both decrease"},
				{Text: "Wavelength decreases, frequency unchanged", IsCorrect: true},
				{Text: "Wavelength unchanged, frequency decreases"},
				{Text: "Both increase"},
			},
			CorrectAnswer: "Wavelength decreases, frequency unchanged",
			Explanation:   "Frequency is fixed by the source; the slower speed in water shortens the wavelength after refraction.",
			Subject:       "Physics",
			Topics:        StringList{"optics", "waves"},
			Difficulty:    DifficultyMedium,
			Provenance:    ProvenanceDB,
		},
		{
			ID:   "phy-005",
			Text: "Heat flows between two bodies in thermal contact until they reach the same what?",
			Options: OptionList{
				{Text: "Entropy"},
				{Text: "Heat capacity"},
				{Text: "Temperature", IsCorrect: true},
				{Text: "Internal energy"},
			},
			CorrectAnswer: "Temperature",
			Explanation:   "Thermal equilibrium is defined by equal temperature, not equal energy content.",
			Subject:       "Physics",
			Topics:        StringList{"thermodynamics"},
			Difficulty:    DifficultyEasy,
			Provenance:    ProvenanceDB,
		},
		{
			ID:   "chem-001",
			Text: "An acid reacts with a base to produce salt and water. What is this reaction called?",
			Options: OptionList{
				{Text: "Oxidation"},
				{Text: "Neutralization", IsCorrect: true},
				{Text: "Precipitation"},
				{Text: "Decomposition"},
			},
			CorrectAnswer: "Neutralization",
			Explanation:   "Acid + base → salt + water is a neutralization reaction.",
			Subject:       "Chemistry",
			Topics:        StringList{"chemistry"},
			Difficulty:    DifficultyEasy,
			Provenance:    ProvenanceDB,
		},
		{
			ID:   "chem-002",
			Text: "Which element has the electron configuration 1s² 2s² 2p⁶ 3s¹?",
			Options: OptionList{
				{Text: "Magnesium"},
				{Text: "Potassium"},
				{Text: "Sodium", IsCorrect: true},
				{Text: "Lithium"},
			},
			CorrectAnswer: "Sodium",
			Explanation:   "Eleven electrons correspond to sodium, the first element of period 3 group 1.",
			Subject:       "Chemistry",
			Topics:        StringList{"chemistry"},
			Difficulty:    DifficultyMedium,
			Provenance:    ProvenanceDB,
		},
		{
			ID:   "math-001",
			Text: "Solve the equation 2x + 6 = 14 for the variable x.",
			Options: OptionList{
				{Text: "x = 2"},
				{Text: "x = 4", IsCorrect: true},
				{Text: "x = 6"},
				{Text: "x = 10"},
			},
			CorrectAnswer: "x = 4",
			Explanation:   "2x = 8, so x = 4.",
			Subject:       "Mathematics",
			Topics:        StringList{"algebra"},
			Difficulty:    DifficultyEasy,
			Provenance:    ProvenanceDB,
		},
		{
			ID:   "math-002",
			Text: "What is the derivative of x³ with respect to x?",
			Options: OptionList{
				{Text: "3x²", IsCorrect: true},
				{Text: "x²"},
				{Text: "3x"},
				{Text: "x³/3"},
			},
			CorrectAnswer: "3x²",
			Explanation:   "The power rule gives d/dx xⁿ = n·xⁿ⁻¹.",
			Subject:       "Mathematics",
			Topics:        StringList{"calculus"},
			Difficulty:    DifficultyEasy,
			Provenance:    ProvenanceDB,
		},
		{
			ID:   "math-003",
			Text: "A triangle has sides of 3 cm, 4 cm and 5 cm. What is its area?",
			Options: OptionList{
				{Text: "6 cm²", IsCorrect: true},
				{Text: "10 cm²"},
				{Text: "12 cm²"},
				{Text: "7.5 cm²"},
			},
			CorrectAnswer: "6 cm²",
			Explanation:   "3-4-5 is a right triangle, so area = ½ × 3 × 4 = 6 cm².",
			Subject:       "Mathematics",
			Topics:        StringList{"geometry"},
			Difficulty:    DifficultyMedium,
			Provenance:    ProvenanceDB,
		},
	}
}
