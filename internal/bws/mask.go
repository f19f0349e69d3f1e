package bws

const redacted = "***"

// Masked returns a copy of the command safe for logs. The value following -t is redacted,
// and for create commands so is everything after the credential flags except --note itself.
func Masked(cmd Command) []string {
	out := make([]string, len(cmd))
	copy(out, cmd)

	// Build emits "-t <token>" and then at most one "--server-url <url>" right after "<bin> <kind> <op>"
	i := 3
	if i+1 < len(out) && out[i] == "-t" {
		out[i+1] = redacted
		i += 2
	}
	if i+1 < len(out) && out[i] == "--server-url" {
		i += 2
	}

	if len(out) > 2 && out[2] == string(OpCreate) {
		for ; i < len(out); i++ {
			if out[i] != "--note" {
				out[i] = redacted
			}
		}
	}
	return out
}
