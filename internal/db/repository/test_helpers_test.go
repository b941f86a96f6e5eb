package repository

import sqlcgen "github.com/Monirah1998/trivia-udacity/internal/db/sqlc"

func sqlQuestion(id int32, category string) sqlcgen.Question {
	return sqlcgen.Question{
		ID:         id,
		Question:   "Question " + category,
		Answer:     "Answer",
		Category:   category,
		Difficulty: 2,
	}
}
