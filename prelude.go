package bebop

// The standard library, written in the language itself. The leading concat
// turns the whole program into a single application whose operands are the
// definitions' empty-string results, which is the same idiom documents use.
const Prelude = `concat

(def [fun]
    (\ [args body]
        [def (list (head args))
        (\ (tail args) body)]))

(fun [h1 children]
    [concat "<h1>" children "</h1>"])

(fun [h2 children]
    [concat "<h2>" children "</h2>"])

(fun [h3 children]
    [concat "<h3>" children "</h3>"])

(fun [h4 children]
    [concat "<h4>" children "</h4>"])

(fun [h5 children]
    [concat "<h5>" children "</h5>"])

(fun [h6 children]
    [concat "<h6>" children "</h6>"])

(fun [code children]
    [concat "<code>" children "</code>"])

(fun [pre children]
    [concat "<pre>" children "</pre>"])

(fun [p children]
    [concat "<p>" children "</p>"])

(fun [i children]
    [concat "<i>" children "</i>"])

(fun [b children]
    [concat "<b>" children "</b>"])

(fun [li children]
    [concat "<li>" children "</li>"])

(fun [ul children]
    [concat "<ul>" children "</ul>"])

(fun [ol children]
    [concat "<ol>" children "</ol>"])

(fun [img src alt]
    [concat "<img src='" src "' alt='" alt "' />"])

(fun [a href children]
    [concat "<a href='" href "'>" children "</a>"])

(def [hr]
    "<hr/>")

(def [true]
    1)

(def [false]
    0)

(def [nil] ())

(fun [not n]
    [if (== n 0) [1] [0]])

(fun [is-nil n]
    [== n nil])

(fun [not-nil n]
    [not (== n nil)])

(fun [dec n] [- n 1])

(fun [cons x xs]
    [join
        (if (== x [])
            [x]
            [list x])
        xs])

(fun [empty l]
    [if (== l [])
        [true]
        [false]])

(fun [len l]
    [if (empty l)
        [0]
        [+ 1 (len (tail l))]])

(fun [rec target base step]
    [if (== 0 target)
        [base]
        [step (dec target)
            (\ [] [rec (dec target) base step])]])

(fun [rec-list target base step]
    [if (== 0 (len target))
        [base]
        [step
            (head target)
            (\ [] [rec-list (tail target) base step])]])

(fun [map target mapper]
    [rec-list target [] (\ [e es] [cons (mapper e) (es)])])

(fun [filter target filterer]
    [rec-list target [] (\ [e es] [if (filterer e) [cons e (es)] [(es)]])])
`

// LoadPrelude evaluates the standard library into env's global frame. env
// should come from NewRootEnv so the builtins are resolvable.
func LoadPrelude(env *Env) error {
	_, err := EvalSource(env, Prelude)
	return err
}
