package shell

// Stage is one command plus its arguments within a pipeline.
type Stage struct {
	// Args holds the command name followed by its arguments.
	Args []string
}

// Name returns the stage's command name.
func (s Stage) Name() string {
	return s.Args[0]
}

// Pipeline is an ordered sequence of stages connected by pipes.
type Pipeline []Stage

// RedirectMode selects how the redirection target file is opened.
type RedirectMode int

const (
	Truncate RedirectMode = iota
	Append
)

// Redirect is the file a pipeline's final output is written to instead of
// the terminal.
type Redirect struct {
	Path string
	Mode RedirectMode
}

// Resolve groups a token stream into a pipeline plus an optional trailing
// redirection target.
//
// Every stage must contain at least one word, so leading, trailing or
// doubled pipes fail with ErrEmptyStage. A redirection operator must be
// followed by exactly one path word and must close the line; anything else
// around it fails with ErrMisplacedRedirection.
//
// An empty token stream resolves to an empty pipeline, which callers treat
// as a no-op.
func Resolve(tokens []Token) (Pipeline, *Redirect, error) {
	if len(tokens) == 0 {
		return nil, nil, nil
	}

	var pipeline Pipeline
	var stage []string

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok.Kind {
		case TokenWord:
			stage = append(stage, tok.Text)

		case TokenPipe:
			if len(stage) == 0 {
				return nil, nil, ErrEmptyStage
			}
			pipeline = append(pipeline, Stage{Args: stage})
			stage = nil

		case TokenRedirect, TokenRedirectAppend:
			if len(stage) == 0 {
				return nil, nil, ErrEmptyStage
			}
			// The target path must be the last construct on the line.
			if i != len(tokens)-2 || tokens[i+1].Kind != TokenWord {
				return nil, nil, ErrMisplacedRedirection
			}

			mode := Truncate
			if tok.Kind == TokenRedirectAppend {
				mode = Append
			}

			pipeline = append(pipeline, Stage{Args: stage})
			return pipeline, &Redirect{Path: tokens[i+1].Text, Mode: mode}, nil
		}
	}

	if len(stage) == 0 {
		return nil, nil, ErrEmptyStage
	}
	pipeline = append(pipeline, Stage{Args: stage})

	return pipeline, nil, nil
}
