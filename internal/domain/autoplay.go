package domain

import "time"

// AutoplayStatus is the lifecycle state of an autoplay session
type AutoplayStatus string

const (
	AutoplayIdle     AutoplayStatus = "idle"
	AutoplayRunning  AutoplayStatus = "running"
	AutoplayStopping AutoplayStatus = "stopping"
	AutoplayStopped  AutoplayStatus = "stopped"
)

// StopReason records why an autoplay session halted
type StopReason string

const (
	StopReasonNone              StopReason = ""
	StopReasonCompleted         StopReason = "completed"
	StopReasonManual            StopReason = "manual"
	StopReasonInsufficientFunds StopReason = "insufficient_funds"
	StopReasonSingleWin         StopReason = "single_win"
	StopReasonTotalWin          StopReason = "total_win"
	StopReasonTotalLoss         StopReason = "total_loss"
	StopReasonLowBalance        StopReason = "low_balance"
	StopReasonBalanceIncrease   StopReason = "balance_increase"
	StopReasonBalanceDecrease   StopReason = "balance_decrease"
	StopReasonJackpot           StopReason = "jackpot"
	StopReasonStrategyHalt      StopReason = "strategy_halt"
	StopReasonError             StopReason = "error"
)

// StrategyKind names a betting strategy
type StrategyKind string

const (
	StrategyFixed             StrategyKind = "fixed"
	StrategyMartingale        StrategyKind = "martingale"
	StrategyReverseMartingale StrategyKind = "reverse_martingale"
	StrategyFibonacci         StrategyKind = "fibonacci"
)

// StrategyAction is what a strategy does after a win or a loss
type StrategyAction string

const (
	ActionContinue StrategyAction = "continue"
	ActionReset    StrategyAction = "reset"
	ActionStop     StrategyAction = "stop"
)

// DefaultStrategyMultiplier is used when a progression strategy has no multiplier set
const DefaultStrategyMultiplier = 2.0

// StrategyConfig selects and tunes a betting strategy
type StrategyConfig struct {
	Kind       StrategyKind   `json:"kind" validate:"omitempty,oneof=fixed martingale reverse_martingale fibonacci"`
	OnWin      StrategyAction `json:"on_win,omitempty" validate:"omitempty,oneof=continue reset stop"`
	OnLoss     StrategyAction `json:"on_loss,omitempty" validate:"omitempty,oneof=continue reset stop"`
	Multiplier float64        `json:"multiplier,omitempty" validate:"omitempty,gt=1,lte=10"`
}

// StopConditions are optional thresholds that end an autoplay session.
// A nil threshold is not checked. BalanceIncrease and BalanceDecrease compare
// the session's net result, so balance changes from outside the session don't count.
type StopConditions struct {
	SingleWinAmount *Money `json:"single_win_amount,omitempty" validate:"omitempty,gt=0"`
	TotalWinAmount  *Money `json:"total_win_amount,omitempty" validate:"omitempty,gt=0"`
	TotalLossAmount *Money `json:"total_loss_amount,omitempty" validate:"omitempty,gt=0"`
	BalanceIncrease *Money `json:"balance_increase,omitempty" validate:"omitempty,gt=0"`
	BalanceDecrease *Money `json:"balance_decrease,omitempty" validate:"omitempty,gt=0"`
	BalanceFloor    *Money `json:"balance_floor,omitempty" validate:"omitempty,gte=0"`
	StopOnJackpot   bool   `json:"stop_on_jackpot,omitempty"`
}

// AutoplayConfig is the input to start an autoplay session
type AutoplayConfig struct {
	TotalSpins     int            `json:"total_spins"`
	BaseBet        Money          `json:"base_bet"`
	MaxBet         Money          `json:"max_bet,omitempty"`
	Strategy       StrategyConfig `json:"strategy"`
	StopConditions StopConditions `json:"stop_conditions"`
}

// AutoplaySession is a snapshot of an autoplay session
type AutoplaySession struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	Status         AutoplayStatus `json:"status"`
	StopReason     StopReason     `json:"stop_reason,omitempty"`
	RemainingSpins int            `json:"remaining_spins"`
	TotalSpins     int            `json:"total_spins"`
	SpinsPlayed    int            `json:"spins_played"`
	BaseBet        Money          `json:"base_bet"`
	CurrentBet     Money          `json:"current_bet"`
	MaxBet         Money          `json:"max_bet"`
	Strategy       StrategyConfig `json:"strategy"`
	StopConditions StopConditions `json:"stop_conditions"`
	TotalWon       Money          `json:"total_won"`
	TotalLost      Money          `json:"total_lost"`
	LastSpin       *SpinResult    `json:"last_spin,omitempty"`
	LastError      string         `json:"last_error,omitempty"`
	StartedAt      time.Time      `json:"started_at"`
	StoppedAt      *time.Time     `json:"stopped_at,omitempty"`
}

// IsActive reports whether the session still owns the user's autoplay slot
func (s *AutoplaySession) IsActive() bool {
	return s.Status == AutoplayRunning || s.Status == AutoplayStopping
}
