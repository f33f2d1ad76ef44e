package yahtzee

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/suderio/emodice/internal/dice"
)

// Rounds is the number of rounds in a game, one per category.
const Rounds = NumCategories

var (
	// ErrSessionComplete rejects play after the last round has been scored.
	ErrSessionComplete = errors.New("game is over")
	// ErrTurnNotFinal rejects scoring while dice are still in play.
	ErrTurnNotFinal = errors.New("dice are still in play")
	// ErrInvalidInput marks a provider answer that should be asked again.
	ErrInvalidInput = errors.New("invalid input")
)

// Notices shown with the next prompt after a rejected answer.
const (
	NoticeMalformedRetention = "Invalid input, rerolling all"
	NoticeInvalidCategory    = "Invalid or already used category!"
	NoticeBadNumber          = "Please enter a number 1-13"
)

// TurnView is what a retention provider gets to look at.
type TurnView struct {
	Round     int
	Roll      int
	RollsLeft int
	Hand      Hand
	Held      dice.Faces
	Card      *Scorecard
	Notice    string
}

// ScoreView is what a category provider gets to look at.
type ScoreView struct {
	Round      int
	Hand       Hand
	Potentials []Potential
	Card       *Scorecard
	Notice     string
}

// RetentionProvider asks which dice to keep. Returning an error wrapping
// ErrInvalidInput rerolls everything; any other error aborts the round.
type RetentionProvider func(TurnView) (Retention, error)

// CategoryProvider asks which category to score. Returning an error wrapping
// ErrInvalidInput asks again; any other error aborts the round.
type CategoryProvider func(ScoreView) (Category, error)

// Session is one thirteen-round game. It owns its scorecard and current turn.
type Session struct {
	card   *Scorecard
	roller *dice.Roller
	turn   *Turn
	events []Event
	log    logrus.FieldLogger
}

// NewSession begins a game with an empty scorecard at round 1.
func NewSession(roller *dice.Roller, log logrus.FieldLogger) *Session {
	if roller == nil {
		roller = dice.NewRoller(nil)
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Session{
		card:   NewScorecard(),
		roller: roller,
		log:    log,
	}
}

// Round is the current round number, Rounds+1 once the game is over.
func (s *Session) Round() int { return s.card.FilledCount() + 1 }

// Complete reports whether every category has been scored.
func (s *Session) Complete() bool { return s.card.IsComplete() }

// Scorecard returns a snapshot of the scorecard.
func (s *Session) Scorecard() *Scorecard { return s.card.Clone() }

// Turn is the turn in progress, or nil between rounds.
func (s *Session) Turn() *Turn { return s.turn }

// Events returns the session's log so far.
func (s *Session) Events() []Event {
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Result derives totals and tier from the scorecard as it stands.
func (s *Session) Result() Result { return ResultOf(s.card) }

// StartRound begins the current round with a first roll. It returns the turn
// already in progress if there is one.
func (s *Session) StartRound() (*Turn, error) {
	if s.Complete() {
		return nil, ErrSessionComplete
	}
	if s.turn != nil {
		return s.turn, nil
	}
	t := NewTurn(s.roller)
	if err := t.Start(); err != nil {
		return nil, err
	}
	s.turn = t
	s.log.WithField("round", s.Round()).Debug("round started")
	s.recordRoll()
	return t, nil
}

// Reroll applies a retention choice to the turn in progress.
func (s *Session) Reroll(r Retention) error {
	if s.turn == nil {
		return ErrTurnNotStarted
	}
	before := s.turn.Roll()
	if err := s.turn.Keep(r); err != nil {
		return err
	}
	if s.turn.Roll() != before {
		s.recordRoll()
	}
	return nil
}

// Commit scores the final hand in c and advances to the next round.
// A used or unknown category leaves the session untouched.
func (s *Session) Commit(c Category) (*CategoryScoredEvent, error) {
	if s.Complete() {
		return nil, ErrSessionComplete
	}
	if s.turn == nil || !s.turn.Final() {
		return nil, ErrTurnNotFinal
	}
	hand := s.turn.Hand()
	evt := &CategoryScoredEvent{
		Round:    s.Round(),
		Category: c,
		Hand:     hand,
		Score:    Score(hand, c),
	}
	if err := evt.Apply(s.card); err != nil {
		s.log.WithField("category", c.Key()).WithError(err).Info("category rejected")
		return nil, err
	}
	s.events = append(s.events, evt)
	s.turn = nil
	s.log.WithFields(logrus.Fields{
		"round":    evt.Round,
		"category": c.Key(),
		"score":    evt.Score,
	}).Debug("category scored")

	if s.Complete() {
		res := s.Result()
		s.events = append(s.events, &GameCompletedEvent{Result: res})
		s.log.WithFields(logrus.Fields{"score": res.Grand, "tier": res.Tier.String()}).Info("game complete")
	}
	return evt, nil
}

// PlayRound runs one full round: the roll phase driven by keep, then the
// category choice driven by choose. Providers are asked again until they
// produce a valid transition.
func (s *Session) PlayRound(keep RetentionProvider, choose CategoryProvider) (*CategoryScoredEvent, error) {
	turn, err := s.StartRound()
	if err != nil {
		return nil, err
	}

	notice := ""
	for !turn.Final() {
		r, err := keep(s.turnView(notice))
		notice = ""
		if err != nil {
			if !errors.Is(err, ErrInvalidInput) {
				return nil, err
			}
			s.log.WithField("round", s.Round()).WithError(err).Warn("malformed retention, rerolling all")
			notice = NoticeMalformedRetention
			r = RerollAll()
		}
		if err := s.Reroll(r); err != nil {
			return nil, err
		}
	}

	for {
		c, err := choose(s.scoreView(notice))
		if err != nil {
			if !errors.Is(err, ErrInvalidInput) {
				return nil, err
			}
			notice = NoticeBadNumber
			continue
		}
		evt, err := s.Commit(c)
		switch {
		case err == nil:
			return evt, nil
		case errors.Is(err, ErrCategoryFilled), errors.Is(err, ErrUnknownCategory):
			notice = NoticeInvalidCategory
		default:
			return nil, err
		}
	}
}

// TurnView describes the turn in progress for a front end.
func (s *Session) TurnView() TurnView { return s.turnView("") }

// ScoreView describes the scoring choice for a front end.
func (s *Session) ScoreView() ScoreView { return s.scoreView("") }

func (s *Session) turnView(notice string) TurnView {
	v := TurnView{Round: s.Round(), Card: s.Scorecard(), Notice: notice}
	if s.turn != nil {
		v.Roll = s.turn.Roll()
		v.RollsLeft = s.turn.RollsLeft()
		v.Hand = s.turn.Hand()
		v.Held = s.turn.Held()
	}
	return v
}

func (s *Session) scoreView(notice string) ScoreView {
	v := ScoreView{Round: s.Round(), Card: s.Scorecard(), Notice: notice}
	if s.turn != nil {
		v.Hand = s.turn.Hand()
		v.Potentials = s.card.Potentials(v.Hand)
	}
	return v
}

func (s *Session) recordRoll() {
	evt := &DiceRolledEvent{
		Round: s.Round(),
		Roll:  s.turn.Roll(),
		Hand:  s.turn.Hand(),
		Held:  len(s.turn.Held()),
	}
	s.events = append(s.events, evt)
	s.log.WithFields(logrus.Fields{"round": evt.Round, "roll": evt.Roll}).Debug(evt.Message())
}
