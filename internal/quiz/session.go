package quiz

import "math/rand"

// Session is a live quiz instance. Sessions are produced only by the loader
// and own their questions exclusively; accessors hand out copies.
type Session struct {
	questions []Question
	kind      Kind
	current   int
	shuffled  bool
	rng       *rand.Rand
}

// Len returns the number of questions.
func (s *Session) Len() int {
	return len(s.questions)
}

// Kind returns the classification computed at load time.
func (s *Session) Kind() Kind {
	return s.kind
}

// CurrentIndex returns the cursor position.
func (s *Session) CurrentIndex() int {
	return s.current
}

// Shuffled reports whether a shuffle has been applied.
func (s *Session) Shuffled() bool {
	return s.shuffled
}

// IsLast reports whether the cursor is on the final question.
func (s *Session) IsLast() bool {
	return s.current == len(s.questions)-1
}

// CurrentQuestion returns the question at the cursor.
func (s *Session) CurrentQuestion() (Question, bool) {
	return s.Question(s.current)
}

// Question returns the question at index i.
func (s *Session) Question(i int) (Question, bool) {
	if i < 0 || i >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[i].clone(), true
}

// Questions returns a copy of every question in session order.
func (s *Session) Questions() []Question {
	out := make([]Question, len(s.questions))
	for i, question := range s.questions {
		out[i] = question.clone()
	}
	return out
}

// Next advances the cursor unless it is already on the last question.
func (s *Session) Next() bool {
	if s.current < len(s.questions)-1 {
		s.current++
		return true
	}
	return false
}

// Previous moves the cursor back unless it is already on the first question.
func (s *Session) Previous() bool {
	if s.current > 0 {
		s.current--
		return true
	}
	return false
}

// SubmitAnswer records answer for the current question, replacing any
// earlier answer.
func (s *Session) SubmitAnswer(answer string) {
	if s.current < 0 || s.current >= len(s.questions) {
		return
	}
	s.questions[s.current].UserAnswer = &answer
}

// Shuffle permutes the question order and, independently, each question's
// options. The cursor and recorded answers are left as they are.
func (s *Session) Shuffle() {
	s.rng.Shuffle(len(s.questions), func(i, j int) {
		s.questions[i], s.questions[j] = s.questions[j], s.questions[i]
	})
	for i := range s.questions {
		options := s.questions[i].Options
		if len(options) == 0 {
			continue
		}
		s.rng.Shuffle(len(options), func(a, b int) {
			options[a], options[b] = options[b], options[a]
		})
	}
	s.shuffled = true
}

// Restart prepares a fresh attempt: optionally reshuffles, rewinds the
// cursor and clears every answer in one step.
func (s *Session) Restart(shuffle bool) {
	if shuffle {
		s.Shuffle()
	}
	s.current = 0
	for i := range s.questions {
		s.questions[i].UserAnswer = nil
	}
}

// Results scores the answered questions.
func (s *Session) Results() Results {
	results := Results{Total: len(s.questions)}
	for i, question := range s.questions {
		if question.UserAnswer == nil {
			continue
		}
		if AnswersMatch(*question.UserAnswer, question.CorrectAnswer) {
			results.Correct++
		} else {
			results.Incorrect = append(results.Incorrect, i)
		}
	}
	return results
}

// Results summarizes a scored session. Unanswered questions count as
// neither correct nor incorrect.
type Results struct {
	Total     int
	Correct   int
	Incorrect []int
}

// Answered returns the number of answered questions.
func (r Results) Answered() int {
	return r.Correct + len(r.Incorrect)
}

// Percent returns the share of correct answers over all questions.
func (r Results) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Total) * 100
}
