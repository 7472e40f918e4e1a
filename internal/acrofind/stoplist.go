package acrofind

// stoplist holds all-caps words that are not acronyms: SQL and programming
// keywords, shell commands, units, and common technical vocabulary.
var stoplist = map[string]struct{}{}

func init() {
	words := []string{
		// SQL keywords and database terms.
		"SELECT", "WHERE", "FROM", "JOIN", "AND", "OR", "NULL", "INT", "VARCHAR",
		"CREATE", "TABLE", "INSERT", "UPDATE", "DELETE", "DROP", "ALTER", "INDEX",
		"PRIMARY", "KEY", "FOREIGN", "REFERENCES", "DEFAULT", "NOT", "UNIQUE",
		"ORDER", "GROUP", "BY", "ASC", "DESC", "LIMIT", "OFFSET", "TRUE", "FALSE",
		"BEGIN", "END", "COMMIT", "ROLLBACK", "INTO", "VALUES", "SET",

		// Programming terms and keywords.
		"STRING", "BOOL", "VOID", "CHAR", "CONST", "STATIC", "PUBLIC", "PRIVATE",
		"CLASS", "INTERFACE", "RETURN", "THROW", "CATCH", "TRY", "NEW", "THIS",
		"SUPER", "EXTENDS", "IMPLEMENTS", "FINAL", "ABSTRACT", "ASYNC", "AWAIT",
		"BREAK", "CASE", "CONTINUE", "DO", "ELSE", "FOR", "IF", "IN", "INSTANCEOF",
		"PACKAGE", "PROTECTED", "SWITCH", "SYNCHRONIZED", "THROWS", "TRANSIENT",
		"WHILE", "WITH",

		// Common words often written in caps.
		"README", "LICENSE", "CONTRIBUTING", "TODO", "FIXME", "NOTE", "WARNING",
		"ERROR", "DEBUG", "INFO", "FATAL", "SUCCESS", "FAIL", "YES", "NO",
		"ON", "OFF", "ENABLE", "DISABLE", "ADD", "REMOVE", "GET", "SET", "PUT",
		"POST", "HEAD", "OPTIONS", "PATCH", "COPY", "MOVE", "LINK", "UNLINK",

		// File extensions and formats.
		"MD", "TXT", "CSV", "JSON", "XML", "YAML", "YML", "INI", "CONF", "CFG",
		"LOG", "PID", "ENV", "BAK", "TMP", "TEMP", "LOCK", "SOCKET", "FIFO",
		"BIN", "EXE", "DLL", "SO", "JAR", "WAR", "EAR", "TAR", "ZIP", "GZ",
		"RAR", "ISO", "IMG",

		// Date and time.
		"YYYY", "MM", "DD", "HH", "MIN", "SEC", "MS", "NS", "AM", "PM", "UTC",
		"GMT", "NOW", "TODAY", "TOMORROW", "YESTERDAY",

		// Units and measurements.
		"KB", "MB", "GB", "TB", "PB", "KIB", "MIB", "GIB", "TIB", "PIB",
		"HZ", "MHZ", "GHZ", "BPS", "KBPS", "MBPS", "GBPS",

		// Common variable names and programming concepts.
		"ID", "NUM", "MAX", "COUNT", "SUM", "AVG", "NAME", "TYPE",
		"SIZE", "LEN", "POS", "VAL", "BUF", "PTR", "REF",
		"OBJ", "STR", "ARR", "LIST", "DICT", "MAP", "QUEUE", "STACK",
		"TREE", "GRAPH", "NODE", "EDGE", "PATH", "ROOT", "LEAF", "PARENT",
		"CHILD", "NEXT", "PREV", "TAIL", "FRONT", "BACK",

		// Shell commands and system terms.
		"CD", "PWD", "LS", "CP", "MV", "RM", "MKDIR", "RMDIR", "CHMOD", "CHOWN",
		"CHGRP", "SUDO", "SU", "SSH", "SCP", "SFTP", "GREP", "AWK", "SED",
		"CAT", "LESS", "MORE", "TOUCH", "FIND", "WHICH",
		"WHEREIS", "WHO", "PS", "TOP", "KILL", "PKILL", "SLEEP", "WAIT",

		// Technical vocabulary that is not an acronym.
		"ACTIVE", "BACKUP", "CACHE", "CONFIG", "DATA", "DOMAIN", "FILE",
		"HOST", "INPUT", "JOB", "LINE", "MODE", "NET", "OUTPUT",
		"PORT", "QUERY", "ROUTE", "STATUS", "TIME", "USER", "VALUE",
		"WORK", "ZONE", "COMMAND", "PROCESS", "SERVICE", "SYSTEM", "VERSION",
		"WINDOW", "SCREEN", "DEVICE", "DRIVER", "MODULE", "SCRIPT",
		"SHELL", "THREAD", "VOLUME", "CLIENT", "SERVER", "PROXY",
		"MASTER", "SLAVE", "WORKER", "MANAGER", "AGENT", "BROKER", "ROUTER",
		"BRIDGE", "GATEWAY", "FIREWALL", "NETWORK", "DATABASE",
		"CLUSTER", "POOL", "HEAP", "BUFFER", "STREAM",
		"FILTER", "PARSER", "LOGGER", "MONITOR", "TRACKER", "COUNTER",
		"TIMER", "SCHEDULER", "BUILDER", "FACTORY", "PROVIDER", "CONSUMER",
		"PRODUCER", "SUBSCRIBER", "PUBLISHER", "LISTENER", "HANDLER", "WRAPPER",
		"CONTAINER", "RESOURCE", "TEMPLATE", "PATTERN", "FORMAT", "STYLE",
		"THEME", "LAYOUT", "VIEW", "MODEL", "CONTROLLER", "ACTION", "EVENT",
		"TRIGGER", "SIGNAL", "MESSAGE", "REQUEST", "RESPONSE", "SESSION",
		"COOKIE", "STORE", "REPOSITORY", "REGISTRY", "CONTEXT",
		"SCOPE", "NAMESPACE", "LIBRARY", "FRAMEWORK", "PLATFORM",
		"RUNTIME", "ENGINE", "COMPILER", "INTERPRETER", "DEBUGGER", "PROFILER",
		"ANALYZER", "VALIDATOR", "CONVERTER", "TRANSFORMER", "ENCODER",
		"DECODER", "FORMATTER", "SERIALIZER", "DESERIALIZER",
	}
	for _, w := range words {
		stoplist[w] = struct{}{}
	}
}
