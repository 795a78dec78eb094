// Package patterndefs is the bundled default pattern corpus: a static,
// read-only mapping from pattern name to definition string, loaded once at
// dictionary construction. Its contents are data, not behavior — every entry
// only needs to be a valid definition string under the placeholder grammar.
package patterndefs

// Defaults is the bundled set of common named patterns, grouped loosely by
// concern. Names follow the long-standing grok convention (upper-case,
// underscore-separated) so that dictionaries seeded from it interoperate
// with templates written against any other grok-flavored corpus.
var Defaults = map[string]string{
	// Generic building blocks.
	"WORD":       `\b\w+\b`,
	"NOTSPACE":   `\S+`,
	"SPACE":      `\s*`,
	"DATA":       `.*?`,
	"GREEDYDATA": `.*`,
	"QUOTEDSTRING": `(?:"(?:[^"\\]|\\.)*"|'(?:[^'\\]|\\.)*')`,

	// Numbers.
	"BASE10NUM": `(?:[+-]?(?:[0-9]+(?:\.[0-9]+)?)|\.[0-9]+)`,
	"BASE16NUM": `(?:0[xX])?(?:[0-9a-fA-F]+)`,
	"NUMBER":    `%{BASE10NUM}`,
	"INT":       `(?:[+-]?(?:[0-9]+))`,
	"POSINT":    `\b(?:[1-9][0-9]*)\b`,
	"NONNEGINT": `\b(?:[0-9]+)\b`,

	// Network.
	"IPV4":     `(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)`,
	"IPV6":     `((([0-9A-Fa-f]{1,4}:){7}[0-9A-Fa-f]{1,4})|(([0-9A-Fa-f]{1,4}:){1,7}:)|(::([0-9A-Fa-f]{1,4}:){0,6}[0-9A-Fa-f]{1,4}))`,
	"IP":       `(?:%{IPV6}|%{IPV4})`,
	"HOSTNAME": `\b(?:[0-9A-Za-z](?:[0-9A-Za-z-]{0,61}[0-9A-Za-z])?)(?:\.(?:[0-9A-Za-z](?:[0-9A-Za-z-]{0,61}[0-9A-Za-z])?))*(?:\.?|\b)`,
	"IPORHOST": `(?:%{IP}|%{HOSTNAME})`,
	"HOSTPORT": `%{IPORHOST}:%{POSINT}`,
	"PORT":     `\b(?:[0-9]{1,5})\b`,
	"MAC":      `(?:%{CISCOMAC}|%{WINDOWSMAC}|%{COMMONMAC})`,
	"CISCOMAC":   `(?:[A-Fa-f0-9]{4}\.[A-Fa-f0-9]{4}\.[A-Fa-f0-9]{4})`,
	"WINDOWSMAC": `(?:[A-Fa-f0-9]{2}-[A-Fa-f0-9]{2}-[A-Fa-f0-9]{2}-[A-Fa-f0-9]{2}-[A-Fa-f0-9]{2}-[A-Fa-f0-9]{2})`,
	"COMMONMAC":  `(?:[A-Fa-f0-9]{2}:[A-Fa-f0-9]{2}:[A-Fa-f0-9]{2}:[A-Fa-f0-9]{2}:[A-Fa-f0-9]{2}:[A-Fa-f0-9]{2})`,

	// Paths and URIs.
	"USERNAME":     `[a-zA-Z0-9._-]+`,
	"USER":         `%{USERNAME}`,
	"PATH":         `(?:%{UNIXPATH}|%{WINPATH})`,
	"UNIXPATH":     `(?:/[\w_%!$@:.,+~-]*)+`,
	"WINPATH":      `(?:[A-Za-z]+:|\\)(?:\\[^\\?*]*)+`,
	"URIPROTO":     `[A-Za-z](?:[A-Za-z0-9+\-.]+)+`,
	"URIHOST":      `%{IPORHOST}(?::%{PORT})?`,
	"URIPATH":      `(?:/[A-Za-z0-9$.+!*'(){},~:;=@#%&_\-]*)+`,
	"URIPARAM":     `\?[A-Za-z0-9$.+!*'|(){},~@#%&/=:;_?\-\[\]<>]*`,
	"URI":          `%{URIPROTO}://(?:%{USER}(?::[^@]*)?@)?(?:%{URIHOST})?(?:%{URIPATH})?(?:%{URIPARAM})?`,

	// Dates and times.
	"MONTHNUM":  `(?:0?[1-9]|1[0-2])`,
	"MONTHDAY":  `(?:(?:0[1-9])|(?:[12][0-9])|(?:3[01])|[1-9])`,
	"YEAR":      `(?:\d\d){1,2}`,
	"HOUR":      `(?:2[0123]|[01]?[0-9])`,
	"MINUTE":    `(?:[0-5][0-9])`,
	"SECOND":    `(?:60|[0-5]?[0-9](?:[:.,][0-9]+)?)`,
	"TIME":      `%{HOUR}:%{MINUTE}:%{SECOND}`,
	"DATE":      `%{YEAR}-%{MONTHNUM}-%{MONTHDAY}`,
	"ISO8601_TIMEZONE": `(?:Z|[+-]%{HOUR}(?::?%{MINUTE}))`,
	"TIMESTAMP_ISO8601": `%{YEAR}-%{MONTHNUM}-%{MONTHDAY}[T ]%{HOUR}:?%{MINUTE}(?::?%{SECOND})?%{ISO8601_TIMEZONE}?`,
	"SYSLOGTIMESTAMP": `%{MONTH} +%{MONTHDAY} %{TIME}`,
	"MONTH": `\b(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\b`,

	// Logging.
	"LOGLEVEL": `(?:[Aa]lert|ALERT|[Tt]race|TRACE|[Dd]ebug|DEBUG|[Nn]otice|NOTICE|[Ii]nfo?(?:rmation)?|INFO?(?:RMATION)?|[Ww]arn?(?:ing)?|WARN?(?:ING)?|[Ee]rr?(?:or)?|ERR?(?:OR)?|[Cc]rit?(?:ical)?|CRIT?(?:ICAL)?|[Ff]atal|FATAL|[Ss]evere|SEVERE|EMERG(?:ENCY)?|[Ee]merg(?:ency)?)`,
	"SYSLOGPROG": `%{WORD}(?:\[%{POSINT}\])?`,
	"SYSLOGHOST": `%{IPORHOST}`,
	"SYSLOGFACILITY": `<%{NONNEGINT}.%{NONNEGINT}>`,
	"SYSLOGBASE": `%{SYSLOGTIMESTAMP} (?:%{SYSLOGFACILITY} )?%{SYSLOGHOST} %{SYSLOGPROG}:`,

	// HTTP.
	"HTTPDATE":    `%{MONTHDAY}/%{MONTH}/%{YEAR}:%{TIME} %{INT}`,
	"HTTPMETHOD":  `\b(?:GET|POST|PUT|DELETE|PATCH|HEAD|OPTIONS|CONNECT|TRACE)\b`,
	"HTTPVERSION": `HTTP/%{BASE10NUM}`,
	"HTTPSTATUS":  `\b[1-5][0-9][0-9]\b`,
	"COMBINEDAPACHELOG": `%{IPORHOST} %{USER} %{USER} \[%{HTTPDATE}\] "%{HTTPMETHOD} %{URI} %{HTTPVERSION}" %{HTTPSTATUS} (?:%{INT}|-) "%{DATA}" "%{DATA}"`,

	// Identifiers.
	"UUID": `[A-Fa-f0-9]{8}-(?:[A-Fa-f0-9]{4}-){3}[A-Fa-f0-9]{12}`,
	"BASE64": `(?:[A-Za-z0-9+/]{4})*(?:[A-Za-z0-9+/]{2}==|[A-Za-z0-9+/]{3}=)?`,
}
