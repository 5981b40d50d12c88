package outbound

import "context"

type SpeechGeneratorPort interface {
	Synthesize(ctx context.Context, script string) ([]byte, error)
}
