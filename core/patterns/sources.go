// Copyright 2023 - 2025, the transqa contributors
// SPDX-License-Identifier: AGPL-3.0-only

package patterns

// printf conversion characters are case sensitive, so the format
// expressions below carry no (?i) flag.
var formatSources = map[string]string{
	// %s, %(name)s, %-10.2f
	PythonFormat: `%(?:\(\w+\))?[ +#-]*(?:\d+)?(?:\.\d+)?(?:hh|ll|h|l)?[\w%]`,

	// {}, {0}, {name.attr[key]!r:>10.2f}
	PythonBraceFormat: `\{(?:(?:[0-9]+|[_A-Za-z][_0-9A-Za-z]*)` +
		`(?:\.[_A-Za-z][_0-9A-Za-z]*|\[[^\]]+\])*` +
		`(?:![rsa])?` +
		`(?::.?[<>=^]?[+ -]?#?0?[0-9]*[_,]?(?:\.[0-9]+)?[bcdeEfFgGnosxX%]?)?)?\}`,

	// %s, %1$s, %'.10d
	PHPFormat: `%(?:\d+\$)?[ +#-]*(?:\d+)?(?:\.\d+)?(?:hh|ll|h|l)?[\w%]`,
	CFormat:   `%(?:\d+\$)?[ +#'-]*(?:\d+)?(?:\.\d+)?(?:hh|ll|h|l)?[\w%]`,

	// :ref:`target` and ``literal``
	RSTText: "(?i)(?::ref:`[^`]+`|``[^`]+``)",
}

type noiseSource struct {
	name string
	expr string
}

// noiseSources are applied in order. E-mail addresses go before domains,
// and full URLs before bare domains, so a match is never split in two.
var noiseSources = []noiseSource{
	{
		name: "email",
		expr: `(?i)[a-z0-9_.-]+@[a-z0-9_.-]+\.[a-z0-9-]{2,}`,
	},
	{
		name: "url",
		expr: `(?i)(?:http|ftp)s?://` +
			`(?:(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+(?:[A-Z]{2,6}\.?|[A-Z0-9-]{2,}\.?)` +
			`|localhost` +
			`|\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})` +
			`(?::\d+)?` +
			`(?:/?|[/?]\S+)$`,
	},
	{
		name: "hash",
		expr: `#[A-Za-z0-9_-]*`,
	},
	{
		name: "domain",
		expr: `(?i)(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+(?:[A-Z]{2,6}\.?|[A-Z0-9-]{2,}\.?)`,
	},
	{
		name: "path",
		expr: `(?:/[a-zA-Z0-9=:?._-]+)+`,
	},
	{
		name: "template",
		expr: `(?i)\{[a-z_-]+\}`,
	},
}
