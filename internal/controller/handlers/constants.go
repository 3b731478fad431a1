package handlers

// Названия опций команды /set
const (
	OptionInterval  = "interval"
	OptionBanner    = "banner"
	OptionInline    = "inline"
	OptionHighlight = "highlight"
	OptionNotify    = "notify"
	OptionMinutes   = "minutes"

	// OptionPermission разрешение на уведомления, хранится в Gate, а не в настройках
	OptionPermission = "permission"
)

const setUsage = "Usage: /set <option> <value>\n\n" +
	"interval: 30 | 60 | 120 | 300 (seconds)\n" +
	"banner: on | off\n" +
	"inline: on | off\n" +
	"highlight: on | off\n" +
	"notify: on | off\n" +
	"minutes: 5 | 10 | 15 | 30\n" +
	"permission: on | off"

const helpText = "🎓 Class Highlighter\n\n" +
	"I watch today's class table and tell you what is upcoming, in progress or over.\n\n" +
	"/status - today's classes with their status\n" +
	"/next - the next class\n" +
	"/on, /off, /toggle - enable or disable highlighting\n" +
	"/settings - current settings\n" +
	"/set <option> <value> - change a setting\n" +
	"/image - today's classes as a picture\n" +
	"/calendar - today's classes as an .ics file\n" +
	"/help - this message"
