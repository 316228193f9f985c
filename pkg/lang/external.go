package lang

import "strings"

// commonExternalNames collects identifiers idiomatic in ORM, repository,
// query-builder, event, and lifecycle vocabularies across ecosystems.
// They are likely supplied by an external library rather than defined in
// the project, so they are down-weighted, never treated as hard builtins.
var commonExternalNames = newSet(
	// HTTP/API
	"request", "response", "get", "post", "put", "delete", "patch",
	"fetch", "send", "call", "invoke", "dispatch",
	// Repository/ORM
	"find", "findById", "findOne", "findAll", "findBy", "findWhere",
	"findOrFail", "findFirst", "findLast", "firstOrCreate", "firstOrNew",
	"updateOrCreate", "firstWhere", "getById", "getAll", "getOne",
	// Query builder
	"where", "select", "from", "join", "orderBy", "groupBy", "having",
	"limit", "offset", "take", "skip", "paginate", "count", "sum", "avg",
	// Collection operations
	"map", "filter", "reduce", "each", "every", "some", "sort", "reverse",
	"first", "last", "pluck", "chunk", "flatten", "unique", "merge",
	// CRUD
	"save", "update", "create", "destroy", "remove", "insert",
	"persist", "flush", "refresh", "detach", "attach", "sync",
	// Service/handler
	"execute", "handle", "process", "run", "perform", "apply",
	"validate", "transform", "parse", "serialize", "deserialize",
	"render", "build", "make", "resolve", "bind",
	// Event/observer
	"emit", "on", "off", "trigger", "listen", "subscribe", "publish",
	"notify", "observe", "broadcast",
	// Logging
	"log", "info", "warn", "error", "debug", "trace", "dump",
	// Lifecycle
	"init", "start", "stop", "boot", "register", "dispose",
	"mount", "unmount", "setup", "teardown", "configure",
)

// IsCommonExternal reports whether a name is commonly supplied by
// external libraries. The check also folds case so PascalCase framework
// variants match.
func IsCommonExternal(name string) bool {
	if commonExternalNames.Has(name) {
		return true
	}
	return commonExternalNames.Has(strings.ToLower(name))
}
