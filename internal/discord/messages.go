package discord

// Friendly messages shown in place of API errors
const (
	MsgInsufficientFunds   = "💸 You don't have enough balance for that bet."
	MsgBonusClaimed        = "⏳ You already claimed today's bonus. Come back tomorrow!"
	MsgMaintenance         = "🔧 The reels are under maintenance. Please try again later."
	MsgSpinInProgress      = "🎰 Your previous spin is still resolving."
	MsgAutoplayActive      = "🔁 Autoplay is already running. Use `/autoplay stop` first."
	MsgAutoplayNotRunning  = "No autoplay session is running."
	MsgAccountNotFound     = "No account found. Claim `/daily` or `/spin` to open one."
	MsgInvalidBet          = "That bet is outside the table limits. Check `/paytable`."
	MsgServerUnavailable   = "❌ Error connecting to game server."
	MsgGenericErrorPrefix  = "❌ "
	MsgAutoplayStopPending = "Autoplay will stop after the current spin."
	MsgPingUp              = "Pong! 🏓 The reels are up."
	MsgPingAPIDown         = "Pong! 🏓 The game server is not answering right now."
)

// Embed styling
const (
	FooterText = "RewardReels"

	ColorJackpot = 0xFFD700
	ColorWin     = 0x00C853
	ColorLoss    = 0xD50000
	ColorInfo    = 0x2979FF
	ColorBonus   = 0xAA00FF
)

// Command and option names
const (
	CmdPing         = "ping"
	CmdSpin         = "spin"
	CmdJackpot      = "jackpot"
	CmdPaytable     = "paytable"
	CmdBalance      = "balance"
	CmdDaily        = "daily"
	CmdAutoplay     = "autoplay"
	CmdStats        = "stats"
	CmdHistory      = "history"
	CmdAchievements = "achievements"

	SubStart  = "start"
	SubStop   = "stop"
	SubStatus = "status"

	OptBet         = "bet"
	OptSpins       = "spins"
	OptStrategy    = "strategy"
	OptMaxBet      = "max_bet"
	OptStopWin     = "stop_on_win"
	OptStopLoss    = "stop_on_loss"
	OptStopJackpot = "stop_on_jackpot"
)
