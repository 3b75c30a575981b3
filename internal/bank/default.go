package bank

import "termtrivia/internal/domain"

// Default returns the built-in question bank used when no file or
// database bank is configured.
func Default() []domain.Question {
	return []domain.Question{
		{
			Text:       "What does CPU stand for?",
			Options:    []string{"Central Processing Unit", "Computer Primary Unit", "Central Power Unit", "Control Processing Unit"},
			Answer:     "Central Processing Unit",
			Difficulty: domain.DifficultyEasy,
		},
		{
			Text:       "What does GPU stand for?",
			Options:    []string{"Graphics Processing Unit", "General Processing Unit", "Graphical Program Unit", "Global Processing Unit"},
			Answer:     "Graphics Processing Unit",
			Difficulty: domain.DifficultyEasy,
		},
		{
			Text:       "What does RAM stand for?",
			Options:    []string{"Random Access Memory", "Readily Available Memory", "Random Active Memory", "Rapid Access Memory"},
			Answer:     "Random Access Memory",
			Difficulty: domain.DifficultyEasy,
		},
		{
			Text:       "Which sorting algorithm has average time complexity O(n log n) and is often used for large datasets?",
			Options:    []string{"Bubble sort", "Selection sort", "Merge sort", "Insertion sort"},
			Answer:     "Merge sort",
			Difficulty: domain.DifficultyMedium,
		},
		{
			Text:       "In Python, what does GIL (Global Interpreter Lock) affect?",
			Options:    []string{"I/O performance only", "Ability to use multiple cores for CPU-bound Python bytecode", "Memory allocation", "Garbage collection timing"},
			Answer:     "Ability to use multiple cores for CPU-bound Python bytecode",
			Difficulty: domain.DifficultyMedium,
		},
		{
			Text:       "Which of the following is a non-relational (NoSQL) database?",
			Options:    []string{"PostgreSQL", "MySQL", "MongoDB", "SQLite"},
			Answer:     "MongoDB",
			Difficulty: domain.DifficultyEasy,
		},
		{
			Text:       "What is the main idea behind Docker?",
			Options:    []string{"Virtual machines with full OS", "Containerization for lightweight, portable runtime environments", "A new programming language", "A database engine"},
			Answer:     "Containerization for lightweight, portable runtime environments",
			Difficulty: domain.DifficultyMedium,
		},
		{
			Text:       "Which neural network architecture is best suited for sequence data like time series or text?",
			Options:    []string{"Convolutional Neural Network (CNN)", "Recurrent Neural Network (RNN)", "K-Means", "PCA"},
			Answer:     "Recurrent Neural Network (RNN)",
			Difficulty: domain.DifficultyHard,
		},
		{
			Text:       "Which Big O gives worst-case time complexity for QuickSort?",
			Options:    []string{"O(n)", "O(n log n)", "O(n^2)", "O(log n)"},
			Answer:     "O(n^2)",
			Difficulty: domain.DifficultyHard,
		},
	}
}
