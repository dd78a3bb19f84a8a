// Package domain contains the core identifier renaming engine.
package domain

import "strings"

// Builtins is the injected reserved-identifier configuration used by the
// eligibility checks. Names in this set are never renamed: under-listing
// would rename runtime primitives and break programs, over-listing would
// silently protect ordinary variables and weaken the attack.
type Builtins map[string]struct{}

// Has reports whether name is reserved.
func (b Builtins) Has(name string) bool {
	_, ok := b[name]
	return ok
}

// isDunder reports whether name is a double-underscore name like __init__.
func isDunder(name string) bool {
	return strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

// pythonKeywords are the hard keywords plus the soft keywords that carry
// statement syntax (match/case/type); renaming a token spelled like one of
// these on the lexical path could change parse structure.
var pythonKeywords = []string{
	"and", "as", "assert", "async", "await", "break", "class", "continue",
	"def", "del", "elif", "else", "except", "finally", "for", "from",
	"global", "if", "import", "in", "is", "lambda", "nonlocal", "not",
	"or", "pass", "raise", "return", "try", "while", "with", "yield",
	"match", "case", "type",
}

// pythonConstants are the singleton constants of the runtime.
var pythonConstants = []string{
	"True", "False", "None", "NotImplemented", "Ellipsis", "__debug__",
}

// pythonContextNames are conventional synthetic binding names: the implicit
// first parameters of instance and class methods.
var pythonContextNames = []string{"self", "cls"}

// pythonBuiltinFunctions is dir(builtins) of CPython minus exceptions and
// constants, reproduced in full.
var pythonBuiltinFunctions = []string{
	"abs", "aiter", "all", "anext", "any", "ascii", "bin", "bool",
	"breakpoint", "bytearray", "bytes", "callable", "chr", "classmethod",
	"compile", "complex", "copyright", "credits", "delattr", "dict", "dir",
	"divmod", "enumerate", "eval", "exec", "exit", "filter", "float",
	"format", "frozenset", "getattr", "globals", "hasattr", "hash", "help",
	"hex", "id", "input", "int", "isinstance", "issubclass", "iter", "len",
	"license", "list", "locals", "map", "max", "memoryview", "min", "next",
	"object", "oct", "open", "ord", "pow", "print", "property", "quit",
	"range", "repr", "reversed", "round", "set", "setattr", "slice",
	"sorted", "staticmethod", "str", "sum", "super", "tuple", "vars", "zip",
}

// pythonExceptions is the builtin exception and warning hierarchy.
var pythonExceptions = []string{
	"ArithmeticError", "AssertionError", "AttributeError", "BaseException",
	"BaseExceptionGroup", "BlockingIOError", "BrokenPipeError",
	"BufferError", "BytesWarning", "ChildProcessError",
	"ConnectionAbortedError", "ConnectionError", "ConnectionRefusedError",
	"ConnectionResetError", "DeprecationWarning", "EOFError",
	"EncodingWarning", "EnvironmentError", "Exception", "ExceptionGroup",
	"FileExistsError", "FileNotFoundError", "FloatingPointError",
	"FutureWarning", "GeneratorExit", "IOError", "ImportError",
	"ImportWarning", "IndentationError", "IndexError", "InterruptedError",
	"IsADirectoryError", "KeyError", "KeyboardInterrupt", "LookupError",
	"MemoryError", "ModuleNotFoundError", "NameError",
	"NotADirectoryError", "NotImplementedError", "OSError",
	"OverflowError", "PendingDeprecationWarning", "PermissionError",
	"ProcessLookupError", "RecursionError", "ReferenceError",
	"ResourceWarning", "RuntimeError", "RuntimeWarning",
	"StopAsyncIteration", "StopIteration", "SyntaxError", "SyntaxWarning",
	"SystemError", "SystemExit", "TabError", "TimeoutError", "TypeError",
	"UnboundLocalError", "UnicodeDecodeError", "UnicodeEncodeError",
	"UnicodeError", "UnicodeTranslateError", "UnicodeWarning",
	"UserWarning", "ValueError", "Warning", "ZeroDivisionError",
}

// DefaultBuiltins returns the standard Python reserved-identifier set.
func DefaultBuiltins() Builtins {
	groups := [][]string{
		pythonKeywords,
		pythonConstants,
		pythonContextNames,
		pythonBuiltinFunctions,
		pythonExceptions,
	}

	b := make(Builtins)

	for _, group := range groups {
		for _, name := range group {
			b[name] = struct{}{}
		}
	}

	return b
}
