// Package config loads runtime configuration for the userdesk console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. USERDESK_* variables from a dotenv file (-env, or ./.env when present)
//     and from the process environment, which wins over the file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   API base URL (default https://reqres.in/api)
//	-k string   API key sent as x-api-key
//	-s string   session database file (default userdesk.db)
//	-d int      search debounce in milliseconds (default 300)
//	-l string   log level (default info)
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://reqres.in/api",
//	  "api_key": "reqres-free-v1",
//	  "session_db": "userdesk.db",
//	  "search_debounce": "300ms",
//	  "log_level": "debug"
//	}
//
// Malformed input in any source panics at startup.
package config
