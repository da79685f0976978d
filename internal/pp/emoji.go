package pp

// Emoji is the type of emoji strings.
type Emoji string

const (
	EmojiStar   Emoji = "🌟" // stars attached to the tool name
	EmojiBullet Emoji = "🔸" // generic bullet points

	EmojiEnvVars    Emoji = "📖" // reading configuration
	EmojiConfig     Emoji = "🔧" // showing configuration
	EmojiInternet   Emoji = "🌐" // network address detection
	EmojiPrivileges Emoji = "🥷" // /privileges
	EmojiMute       Emoji = "🔇" // quiet mode
	EmojiDisabled   Emoji = "🚫" // feature is disabled

	EmojiCreateRecord Emoji = "🐣" // adding new DNS records
	EmojiUpdateRecord Emoji = "📡" // updating DNS records
	EmojiFirewall     Emoji = "🧱" // pushing firewall rules
	EmojiLookup       Emoji = "🔍" // resolving zones, records, and firewalls

	EmojiPing         Emoji = "🔔" // pinging and health checks
	EmojiNotification Emoji = "📨" // notifications

	EmojiSignal      Emoji = "🚨" // catching signals
	EmojiAlreadyDone Emoji = "🤷" // addresses were already up to date
	EmojiNow         Emoji = "🏃" // an event that is happening now or immediately
	EmojiAlarm       Emoji = "⏰" // an event that is scheduled to happen, but not immediately
	EmojiBye         Emoji = "👋" // bye!

	EmojiGood        Emoji = "😊" // good news
	EmojiUserError   Emoji = "😡" // configuration mistakes made by users
	EmojiUserWarning Emoji = "😦" // warnings about possible configuration mistakes
	EmojiError       Emoji = "😞" // errors that are not (directly) caused by user errors
	EmojiWarning     Emoji = "😐" // warnings about something unusual
	EmojiImpossible  Emoji = "🤯" // the impossible happened
	EmojiHint        Emoji = "💡" // Hints
)

// indentPrefix should be wider than an emoji to achieve visually pleasing results.
const indentPrefix = "   "

// IssueReportingURL is where bugs should be reported.
const IssueReportingURL = "https://github.com/favonia/hetzner-ddns/issues/new"
