package lang

import (
	"sort"
	"strings"
)

// Set is a string set used for vocabulary membership checks.
type Set map[string]struct{}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the members sorted ascending.
func (s Set) Names() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func newSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s Set) union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for n := range s {
		out[n] = struct{}{}
	}
	for n := range other {
		out[n] = struct{}{}
	}
	return out
}

// PHP lookups are case-insensitive; entries are stored lowercased and
// IsBuiltin folds the probe before checking.
var phpBuiltins = lowerSet(newSet(
	// Language constructs that look like function calls
	"isset", "empty", "array", "list", "echo", "print", "die", "exit",
	"include", "include_once", "require", "require_once", "eval",
	"foreach", "while", "for", "if", "elseif", "else", "switch", "case",
	"catch", "match", "fn", "unset", "declare", "enddeclare",
	"endfor", "endforeach", "endif", "endswitch", "endwhile",
	// Type functions
	"is_array", "is_string", "is_null", "is_numeric", "is_object", "is_bool",
	"is_int", "is_float", "is_callable", "is_resource", "gettype", "settype",
	"intval", "floatval", "strval", "boolval", "arrayval",
	// String functions
	"strlen", "strpos", "stripos", "strrpos", "strripos", "substr", "str_replace",
	"str_ireplace", "strtolower", "strtoupper", "ucfirst", "lcfirst", "ucwords",
	"trim", "ltrim", "rtrim", "str_pad", "str_repeat", "str_split", "str_word_count",
	"sprintf", "printf", "sscanf", "number_format", "money_format",
	"explode", "implode", "join", "chunk_split", "wordwrap", "nl2br",
	"htmlspecialchars", "htmlentities", "strip_tags", "addslashes", "stripslashes",
	"preg_match", "preg_match_all", "preg_replace", "preg_split", "preg_grep",
	"str_contains", "str_starts_with", "str_ends_with",
	// Array functions
	"count", "sizeof", "array_push", "array_pop", "array_shift", "array_unshift",
	"array_merge", "array_combine", "array_keys", "array_values", "array_flip",
	"array_reverse", "array_slice", "array_splice", "array_chunk", "array_unique",
	"array_filter", "array_map", "array_reduce", "array_walk", "array_search",
	"in_array", "array_key_exists", "array_column", "array_fill", "array_pad",
	"sort", "rsort", "asort", "arsort", "ksort", "krsort", "usort", "uasort", "uksort",
	"array_multisort", "shuffle", "array_rand", "current", "key", "next", "prev", "reset", "end",
	// JSON
	"json_encode", "json_decode", "json_last_error", "json_last_error_msg",
	// Filesystem
	"file_get_contents", "file_put_contents", "file_exists", "is_file", "is_dir",
	"fopen", "fclose", "fread", "fwrite", "fgets", "fgetc", "feof", "fseek", "ftell",
	"file", "readfile", "glob", "scandir", "mkdir", "rmdir", "unlink", "rename", "copy",
	"dirname", "basename", "pathinfo", "realpath", "is_readable", "is_writable",
	// Date/time
	"date", "time", "mktime", "strtotime", "getdate", "localtime", "checkdate",
	"date_create", "date_format", "date_modify", "date_diff", "date_add", "date_sub",
	// Math
	"abs", "ceil", "floor", "round", "max", "min", "pow", "sqrt", "log", "log10",
	"rand", "mt_rand", "random_int", "random_bytes",
	// Variable handling
	"var_dump", "print_r", "var_export", "debug_zval_dump", "serialize", "unserialize",
	// Class/object
	"class_exists", "interface_exists", "trait_exists", "method_exists", "property_exists",
	"get_class", "get_parent_class", "get_class_methods", "get_class_vars", "get_object_vars",
	// Magic methods
	"__construct", "__destruct", "__call", "__callStatic", "__get", "__set", "__isset",
	"__unset", "__sleep", "__wakeup", "__serialize", "__unserialize", "__toString",
	"__invoke", "__set_state", "__clone", "__debugInfo",
	// Error handling
	"trigger_error", "user_error", "error_reporting", "set_error_handler",
	// Sessions
	"session_start", "session_destroy", "session_regenerate_id", "session_id",
	// Header/output
	"header", "headers_sent", "setcookie", "setrawcookie", "ob_start", "ob_end_flush",
	"ob_end_clean", "ob_get_contents", "ob_flush", "flush",
	// Misc
	"defined", "define", "constant", "compact", "extract", "call_user_func",
	"call_user_func_array", "func_get_args", "func_num_args",
))

var javascriptBuiltins = newSet(
	// Console
	"console", "log", "warn", "error", "info", "debug", "trace", "table", "dir",
	"assert", "clear", "count", "countReset", "group", "groupEnd", "time", "timeEnd",
	// Timers
	"setTimeout", "setInterval", "clearTimeout", "clearInterval",
	"requestAnimationFrame", "cancelAnimationFrame",
	// Type conversion
	"parseInt", "parseFloat", "isNaN", "isFinite", "Number", "String", "Boolean",
	// JSON
	"JSON", "parse", "stringify",
	// Object
	"Object", "keys", "values", "entries", "assign", "freeze", "seal", "create",
	"defineProperty", "defineProperties", "getOwnPropertyNames", "getPrototypeOf",
	"hasOwnProperty", "isPrototypeOf", "propertyIsEnumerable",
	// Array
	"Array", "from", "isArray", "of", "map", "filter", "reduce", "reduceRight",
	"forEach", "find", "findIndex", "findLast", "findLastIndex", "includes",
	"indexOf", "lastIndexOf", "some", "every", "flat", "flatMap",
	"slice", "splice", "concat", "join", "reverse", "sort", "fill", "copyWithin",
	"push", "pop", "shift", "unshift", "at", "with", "toSorted", "toReversed",
	// String
	"charAt", "charCodeAt", "codePointAt", "endsWith", "startsWith",
	"localeCompare", "match", "matchAll",
	"normalize", "padEnd", "padStart", "repeat", "replace", "replaceAll",
	"search", "split", "substring", "toLowerCase", "toUpperCase",
	"trim", "trimStart", "trimEnd", "valueOf", "toString",
	// Promise
	"Promise", "resolve", "reject", "all", "allSettled", "race", "any",
	"then", "catch", "finally",
	// Fetch/network
	"fetch", "Request", "Response", "Headers", "URL", "URLSearchParams",
	// Math
	"Math", "abs", "ceil", "floor", "round", "random", "max", "min", "pow", "sqrt",
	"sin", "cos", "tan", "asin", "acos", "atan", "atan2", "log10", "log2",
	"exp", "sign", "trunc", "cbrt", "hypot", "clz32", "imul", "fround",
	// Date
	"Date", "now", "getTime", "getFullYear", "getMonth", "getDate", "getDay",
	"getHours", "getMinutes", "getSeconds", "getMilliseconds", "toISOString",
	"toJSON", "toDateString", "toTimeString", "toLocaleDateString", "toLocaleTimeString",
	// Error
	"Error", "TypeError", "RangeError", "ReferenceError", "SyntaxError",
	"EvalError", "URIError", "AggregateError",
	// Encoding
	"encodeURI", "encodeURIComponent", "decodeURI", "decodeURIComponent",
	"btoa", "atob",
	// RegExp
	"RegExp", "test", "exec",
	// Modules
	"require", "module", "exports", "import", "export", "default",
	// DOM
	"document", "window", "navigator", "location", "history", "localStorage", "sessionStorage",
	"getElementById", "getElementsByClassName", "getElementsByTagName", "getElementsByName",
	"querySelector", "querySelectorAll", "createElement", "createTextNode",
	"appendChild", "removeChild", "insertBefore", "replaceChild", "cloneNode",
	"addEventListener", "removeEventListener", "dispatchEvent",
	"getAttribute", "setAttribute", "removeAttribute", "hasAttribute",
	"classList", "add", "remove", "toggle", "contains",
	"style", "innerText", "innerHTML", "textContent", "value",
	"preventDefault", "stopPropagation", "stopImmediatePropagation",
	// Symbols
	"Symbol", "iterator", "asyncIterator", "toStringTag", "species",
	// Reflect/Proxy
	"Reflect", "Proxy", "apply", "construct", "deleteProperty", "get", "set",
	// TypedArrays
	"ArrayBuffer", "DataView", "Int8Array", "Uint8Array", "Uint8ClampedArray",
	"Int16Array", "Uint16Array", "Int32Array", "Uint32Array",
	"Float32Array", "Float64Array", "BigInt64Array", "BigUint64Array",
	// Maps/sets
	"Map", "Set", "WeakMap", "WeakSet", "has", "delete", "size",
	// Misc
	"eval", "globalThis", "undefined", "null", "NaN", "Infinity",
	"queueMicrotask", "structuredClone", "crypto", "getRandomValues",
)

// TypeScript is JavaScript plus the utility-type names that show up in
// call position.
var typescriptBuiltins = javascriptBuiltins.union(newSet(
	"Partial", "Required", "Readonly", "Pick", "Omit", "Record",
	"Exclude", "Extract", "NonNullable", "ReturnType", "Parameters",
	"InstanceType", "ThisParameterType", "OmitThisParameter", "ThisType",
	"Uppercase", "Lowercase", "Capitalize", "Uncapitalize",
	"Awaited", "ConstructorParameters", "NoInfer",
))

var pythonBuiltins = newSet(
	// Built-in functions
	"abs", "aiter", "all", "any", "anext", "ascii", "bin", "bool", "breakpoint",
	"bytearray", "bytes", "callable", "chr", "classmethod", "compile", "complex",
	"delattr", "dict", "dir", "divmod", "enumerate", "eval", "exec", "filter",
	"float", "format", "frozenset", "getattr", "globals", "hasattr", "hash", "help",
	"hex", "id", "input", "int", "isinstance", "issubclass", "iter", "len", "list",
	"locals", "map", "max", "memoryview", "min", "next", "object", "oct", "open",
	"ord", "pow", "print", "property", "range", "repr", "reversed", "round", "set",
	"setattr", "slice", "sorted", "staticmethod", "str", "sum", "super", "tuple",
	"type", "vars", "zip",
	// String methods
	"capitalize", "casefold", "center", "count", "encode", "endswith", "expandtabs",
	"find", "format_map", "index", "isalnum", "isalpha", "isascii",
	"isdecimal", "isdigit", "isidentifier", "islower", "isnumeric", "isprintable",
	"isspace", "istitle", "isupper", "join", "ljust", "lower", "lstrip", "maketrans",
	"partition", "removeprefix", "removesuffix", "replace", "rfind", "rindex",
	"rjust", "rpartition", "rsplit", "rstrip", "split", "splitlines", "startswith",
	"strip", "swapcase", "title", "translate", "upper", "zfill",
	// List methods
	"append", "clear", "copy", "extend", "insert", "pop", "remove", "reverse", "sort",
	// Dict methods
	"fromkeys", "get", "items", "keys", "popitem", "setdefault", "update", "values",
	// Set methods
	"add", "difference", "difference_update", "discard",
	"intersection", "intersection_update", "isdisjoint", "issubset", "issuperset",
	"symmetric_difference", "symmetric_difference_update", "union",
	// File methods
	"read", "readline", "readlines", "write", "writelines", "seek", "tell", "close",
	"flush", "fileno", "isatty", "truncate",
	// Exception classes
	"BaseException", "Exception", "ArithmeticError", "AssertionError",
	"AttributeError", "BlockingIOError", "BrokenPipeError", "BufferError",
	"BytesWarning", "ChildProcessError", "ConnectionAbortedError",
	"ConnectionError", "ConnectionRefusedError", "ConnectionResetError",
	"DeprecationWarning", "EOFError", "EnvironmentError", "FileExistsError",
	"FileNotFoundError", "FloatingPointError", "FutureWarning", "GeneratorExit",
	"IOError", "ImportError", "ImportWarning", "IndentationError", "IndexError",
	"InterruptedError", "IsADirectoryError", "KeyError", "KeyboardInterrupt",
	"LookupError", "MemoryError", "ModuleNotFoundError", "NameError",
	"NotADirectoryError", "NotImplemented", "NotImplementedError", "OSError",
	"OverflowError", "PendingDeprecationWarning", "PermissionError",
	"ProcessLookupError", "RecursionError", "ReferenceError", "ResourceWarning",
	"RuntimeError", "RuntimeWarning", "StopAsyncIteration", "StopIteration",
	"SyntaxError", "SyntaxWarning", "SystemError", "SystemExit", "TabError",
	"TimeoutError", "TypeError", "UnboundLocalError", "UnicodeDecodeError",
	"UnicodeEncodeError", "UnicodeError", "UnicodeTranslateError", "UnicodeWarning",
	"UserWarning", "ValueError", "Warning", "ZeroDivisionError",
	// Magic methods
	"__init__", "__new__", "__del__", "__repr__", "__str__", "__bytes__",
	"__format__", "__lt__", "__le__", "__eq__", "__ne__", "__gt__", "__ge__",
	"__hash__", "__bool__", "__getattr__", "__getattribute__", "__setattr__",
	"__delattr__", "__dir__", "__get__", "__set__", "__delete__", "__set_name__",
	"__init_subclass__", "__class_getitem__", "__call__", "__len__", "__length_hint__",
	"__getitem__", "__setitem__", "__delitem__", "__missing__", "__iter__",
	"__reversed__", "__contains__", "__add__", "__sub__", "__mul__", "__matmul__",
	"__truediv__", "__floordiv__", "__mod__", "__divmod__", "__pow__", "__lshift__",
	"__rshift__", "__and__", "__xor__", "__or__", "__neg__", "__pos__", "__abs__",
	"__invert__", "__complex__", "__int__", "__float__", "__index__", "__round__",
	"__trunc__", "__floor__", "__ceil__", "__enter__", "__exit__", "__await__",
	"__aiter__", "__anext__", "__aenter__", "__aexit__",
)

var csharpBuiltins = newSet(
	// System.Object
	"ToString", "GetType", "Equals", "GetHashCode", "ReferenceEquals", "MemberwiseClone",
	// Console
	"Console", "WriteLine", "ReadLine", "Write", "Read", "Clear", "Beep",
	// Collections
	"Add", "Remove", "Contains", "Count", "Length", "Capacity",
	"Insert", "RemoveAt", "IndexOf", "LastIndexOf", "CopyTo", "ToArray",
	// LINQ
	"Where", "Select", "SelectMany", "OrderBy", "OrderByDescending", "ThenBy",
	"ThenByDescending", "GroupBy", "Join", "GroupJoin", "Distinct", "Union",
	"Intersect", "Except", "Concat", "Zip", "Reverse", "SequenceEqual",
	"First", "FirstOrDefault", "Last", "LastOrDefault", "Single", "SingleOrDefault",
	"ElementAt", "ElementAtOrDefault", "DefaultIfEmpty", "Skip", "SkipWhile",
	"Take", "TakeWhile", "Any", "All", "LongCount", "Sum", "Min", "Max",
	"Average", "Aggregate", "ToList", "ToDictionary", "ToHashSet",
	"ToLookup", "AsEnumerable", "AsQueryable", "Cast", "OfType",
	// String
	"Format", "Split", "Trim", "TrimStart", "TrimEnd",
	"PadLeft", "PadRight", "Replace", "Substring",
	"ToLower", "ToUpper", "ToLowerInvariant", "ToUpperInvariant",
	"StartsWith", "EndsWith",
	"IsNullOrEmpty", "IsNullOrWhiteSpace", "Compare", "CompareTo",
	"ToCharArray",
	// Task/async
	"Task", "Run", "Wait", "WaitAll", "WaitAny", "WhenAll", "WhenAny",
	"FromResult", "FromException", "FromCanceled", "Delay", "Yield",
	"ConfigureAwait", "GetAwaiter", "GetResult", "ContinueWith",
	// DateTime
	"DateTime", "Now", "Today", "UtcNow", "Parse", "TryParse", "ParseExact",
	"AddDays", "AddHours", "AddMinutes", "AddSeconds", "AddMilliseconds",
	"AddMonths", "AddYears", "Subtract", "DayOfWeek", "DayOfYear",
	// TimeSpan
	"TimeSpan", "FromDays", "FromHours", "FromMinutes", "FromSeconds",
	"FromMilliseconds", "FromTicks", "TotalDays", "TotalHours", "TotalMinutes",
	"TotalSeconds", "TotalMilliseconds",
	// Guid
	"Guid", "NewGuid", "Empty",
	// Math
	"Math", "Abs", "Ceiling", "Floor", "Round", "Truncate",
	"Pow", "Sqrt", "Log", "Log10", "Log2", "Exp", "Sin", "Cos", "Tan",
	"Asin", "Acos", "Atan", "Atan2", "Sign", "Clamp",
	// File/IO
	"File", "Exists", "ReadAllText", "WriteAllText", "ReadAllLines",
	"WriteAllLines", "ReadAllBytes", "WriteAllBytes", "Create", "Delete",
	"Copy", "Move", "AppendAllText", "AppendAllLines",
	"Directory", "CreateDirectory", "GetFiles", "GetDirectories",
	"Path", "Combine", "GetFileName", "GetDirectoryName", "GetExtension",
	"GetFileNameWithoutExtension", "GetFullPath", "GetTempPath", "GetTempFileName",
	// Stream
	"Stream", "Seek", "Flush", "Close", "Dispose",
	"CopyToAsync", "ReadAsync", "WriteAsync", "FlushAsync",
	// JSON
	"JsonSerializer", "Serialize", "Deserialize", "SerializeAsync", "DeserializeAsync",
	"JsonConvert", "SerializeObject", "DeserializeObject",
	// DI
	"GetService", "GetRequiredService", "CreateScope",
	"AddScoped", "AddTransient", "AddSingleton", "AddDbContext",
	// ASP.NET
	"UseRouting", "UseEndpoints", "UseAuthentication", "UseAuthorization",
	"MapControllers", "MapGet", "MapPost", "MapPut", "MapDelete",
	"AddControllers", "AddMvc", "AddRazorPages",
	// EF Core
	"DbContext", "DbSet", "SaveChanges", "SaveChangesAsync",
	"Include", "ThenInclude", "AsNoTracking",
	"Find", "FindAsync", "AddAsync", "Update", "Attach",
	"Entry", "ChangeTracker", "Database", "Migrate", "EnsureCreated",
)

var goBuiltins = newSet(
	// fmt
	"fmt", "Print", "Println", "Printf", "Sprint", "Sprintf", "Sprintln",
	"Fprint", "Fprintln", "Fprintf", "Scan", "Scanln", "Scanf",
	"Errorf", "Sscan", "Sscanln", "Sscanf",
	// Builtins
	"append", "cap", "close", "complex", "copy", "delete", "imag", "len",
	"make", "new", "panic", "print", "println", "real", "recover",
	// errors
	"errors", "New", "Is", "As", "Unwrap",
	// context
	"context", "Background", "TODO", "WithCancel", "WithDeadline",
	"WithTimeout", "WithValue", "Canceled", "DeadlineExceeded",
	// net/http
	"http", "Get", "Post", "Head", "NewRequest", "ListenAndServe",
	"Handle", "HandleFunc", "Serve", "FileServer", "NotFound", "Redirect",
	// encoding/json
	"json", "Marshal", "Unmarshal", "MarshalIndent", "NewEncoder", "NewDecoder",
	"Encode", "Decode", "Valid",
	// io
	"io", "Reader", "Writer", "ReadAll", "Copy", "CopyN", "CopyBuffer",
	"ReadFull", "WriteString", "Pipe", "TeeReader", "LimitReader",
	"NopCloser", "EOF", "ErrUnexpectedEOF", "ErrClosedPipe",
	// os
	"os", "Open", "Create", "OpenFile", "Remove", "RemoveAll", "Rename",
	"Mkdir", "MkdirAll", "ReadFile", "WriteFile", "Stat", "Lstat",
	"Getenv", "Setenv", "Unsetenv", "Environ", "Exit", "Getwd", "Chdir",
	"Args", "Stdin", "Stdout", "Stderr",
	// strings
	"strings", "Contains", "ContainsAny", "ContainsRune", "Count",
	"EqualFold", "Fields", "HasPrefix", "HasSuffix", "Index", "IndexAny",
	"IndexByte", "IndexFunc", "IndexRune", "Join", "LastIndex",
	"LastIndexAny", "LastIndexByte", "LastIndexFunc", "Map", "Repeat",
	"Replace", "ReplaceAll", "Split", "SplitAfter", "SplitAfterN", "SplitN",
	"Title", "ToLower", "ToTitle", "ToUpper", "Trim", "TrimFunc",
	"TrimLeft", "TrimLeftFunc", "TrimPrefix", "TrimRight", "TrimRightFunc",
	"TrimSpace", "TrimSuffix",
	// strconv
	"strconv", "Atoi", "Itoa", "ParseBool", "ParseFloat", "ParseInt",
	"ParseUint", "FormatBool", "FormatFloat", "FormatInt", "FormatUint",
	"Quote", "QuoteRune", "Unquote", "UnquoteChar",
	// time
	"time", "Now", "Since", "Until", "Sleep", "After", "AfterFunc", "Tick",
	"NewTicker", "NewTimer", "Parse", "ParseDuration", "ParseInLocation",
	"Date", "Unix", "UnixMilli", "UnixMicro", "UnixNano",
	"Second", "Minute", "Hour", "Millisecond", "Microsecond", "Nanosecond",
	// sync
	"sync", "Mutex", "RWMutex", "WaitGroup", "Once", "Cond", "Pool",
	"Lock", "Unlock", "RLock", "RUnlock", "Add", "Done", "Wait", "Do",
	// log
	"log", "Fatal", "Fatalln", "Fatalf",
	"Panic", "Panicln", "Panicf", "SetOutput", "SetFlags", "SetPrefix",
	// testing
	"testing", "Error", "Fail", "FailNow",
	"Fatalf", "Log", "Logf", "Run", "Skip", "Skipf", "SkipNow",
	// reflect
	"reflect", "TypeOf", "ValueOf", "DeepEqual", "Append",
	"MakeSlice", "MakeMap", "MakeChan", "MakeFunc", "Zero",
	// sort
	"sort", "Ints", "IntsAreSorted", "Float64s", "Float64sAreSorted",
	"Strings", "StringsAreSorted", "Slice", "SliceStable", "SliceIsSorted",
	"Search", "SearchInts", "SearchFloat64s", "SearchStrings", "Sort", "Reverse",
)

var rustBuiltins = newSet(
	// std macros
	"println", "print", "eprintln", "eprint", "format", "write", "writeln",
	"panic", "assert", "assert_eq", "assert_ne", "debug_assert", "debug_assert_eq",
	"debug_assert_ne", "todo", "unimplemented", "unreachable", "cfg", "env",
	"concat", "stringify", "include", "include_str", "include_bytes",
	"file", "line", "column", "module_path", "option_env",
	"vec", "format_args", "matches", "try",
	// Common traits
	"clone", "Clone", "copy", "Copy", "default", "Default", "eq", "Eq",
	"ord", "Ord", "hash", "Hash", "debug", "Debug", "display", "Display",
	"from", "From", "into", "Into", "as_ref", "AsRef", "as_mut", "AsMut",
	"deref", "Deref", "deref_mut", "DerefMut", "drop", "Drop",
	"iterator", "Iterator", "into_iter", "IntoIterator", "iter", "iter_mut",
	"partial_eq", "PartialEq", "partial_ord", "PartialOrd",
	// Option
	"Option", "Some", "None", "is_some", "is_none", "unwrap", "unwrap_or",
	"unwrap_or_else", "unwrap_or_default", "expect", "ok_or", "ok_or_else",
	"map", "map_or", "map_or_else", "and", "and_then", "or", "or_else",
	"filter", "take", "replace", "cloned", "copied", "flatten", "transpose",
	// Result
	"Result", "Ok", "Err", "is_ok", "is_err", "ok", "err", "unwrap_err",
	"expect_err", "map_err",
	// String
	"String", "new", "with_capacity", "push", "push_str", "pop",
	"truncate", "clear", "len", "is_empty", "capacity", "reserve",
	"shrink_to_fit", "as_str", "as_bytes", "as_mut_str", "insert", "insert_str",
	"remove", "retain", "split_off", "drain", "replace_range",
	// str
	"as_ptr", "get", "get_unchecked",
	"chars", "bytes", "char_indices", "split", "rsplit", "split_terminator",
	"rsplit_terminator", "splitn", "rsplitn", "lines", "contains", "starts_with",
	"ends_with", "find", "rfind", "match_indices",
	"rmatch_indices", "trim", "trim_start", "trim_end", "trim_matches",
	"strip_prefix", "strip_suffix", "parse", "replacen",
	"to_lowercase", "to_uppercase", "repeat", "to_string", "to_owned",
	// Vec
	"Vec", "swap_remove", "into_boxed_slice", "first",
	"last", "get_mut", "chunks", "windows", "sort", "sort_by", "sort_by_key",
	"reverse", "binary_search", "binary_search_by", "binary_search_by_key",
	"extend", "append", "resize", "dedup", "dedup_by", "dedup_by_key",
	// HashMap
	"HashMap", "contains_key", "keys", "values", "values_mut", "entry",
	"or_insert", "or_insert_with",
	// HashSet
	"HashSet", "difference", "symmetric_difference",
	"intersection", "union", "is_disjoint", "is_subset", "is_superset",
	// Box/Rc/Arc
	"Box", "Rc", "Arc", "downgrade", "upgrade", "strong_count",
	"weak_count", "ptr_eq", "into_inner",
	// Cell/RefCell/Mutex
	"Cell", "RefCell", "Mutex", "RwLock", "set",
	"borrow", "borrow_mut", "try_borrow", "try_borrow_mut",
	"lock", "try_lock", "read", "write", "try_read", "try_write",
	// std::fs
	"read_to_string", "create", "open", "remove_file",
	"remove_dir", "remove_dir_all", "create_dir", "create_dir_all",
	"read_dir", "copy", "rename", "metadata", "canonicalize",
	// std::io
	"Read", "Write", "BufRead", "Seek", "BufReader", "BufWriter",
	"stdin", "stdout", "stderr", "read_line", "read_to_end",
	"write_all", "flush", "seek",
	// std::path
	"Path", "PathBuf", "join", "set_file_name",
	"set_extension", "file_name", "file_stem", "extension", "parent",
	"ancestors", "components", "is_absolute", "is_relative", "exists",
	"is_file", "is_dir", "display", "to_str", "to_string_lossy",
	// std::env
	"args", "args_os", "var", "var_os", "vars", "vars_os", "set_var",
	"remove_var", "current_dir", "set_current_dir", "temp_dir", "home_dir",
	// std::thread
	"spawn", "sleep", "yield_now", "current", "park", "park_timeout",
	"JoinHandle", "thread", "is_finished",
	// std::time
	"Instant", "Duration", "SystemTime", "now", "elapsed", "duration_since",
	"from_secs", "from_millis", "from_micros", "from_nanos",
	"as_secs", "as_millis", "as_micros", "as_nanos", "subsec_nanos",
)

func lowerSet(s Set) Set {
	out := make(Set, len(s))
	for n := range s {
		out[strings.ToLower(n)] = struct{}{}
	}
	return out
}

var builtins = map[Language]Set{
	PHP:        phpBuiltins,
	JavaScript: javascriptBuiltins,
	TypeScript: typescriptBuiltins,
	Python:     pythonBuiltins,
	CSharp:     csharpBuiltins,
	Go:         goBuiltins,
	Rust:       rustBuiltins,
}

// Builtins returns the core builtin vocabulary for a language. For PHP
// the returned set does not include the lazily loaded extended
// vocabulary; use IsBuiltin for membership checks.
func Builtins(l Language) Set {
	return builtins[l]
}

// IsBuiltin reports whether name belongs to a language's standard
// vocabulary. PHP comparison is case-insensitive and consults the lazily
// loaded extended vocabulary in addition to the core set.
func IsBuiltin(name string, l Language) bool {
	if l == PHP {
		lower := strings.ToLower(name)
		if phpBuiltins.Has(lower) {
			return true
		}
		return defaultPHPVocab.has(lower)
	}
	return builtins[l].Has(name)
}
