package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/campfire-cantos/internal/game"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
		Confidence: 0,
	}
	if strings.TrimSpace(raw) == "?" {
		intent.Normalised = string(game.CommandHelp)
		intent.Verb = string(game.CommandHelp)
		intent.Kind = Help
		intent.Confidence = 1
		return intent
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command. Type help for the list."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	if len(tokens) > 1 {
		if inferred := inferFreeTextIntent(raw, intent.Normalised); inferred != nil {
			return *inferred
		}
	}

	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try help, look, gather, hunt, drink, eat, cook, craft, rest, travel.",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				{
					Raw:        raw,
					Normalised: cmdMatch.Canonical,
					Kind:       commandKind(cmdMatch.Canonical),
					Verb:       cmdMatch.Canonical,
					Confidence: cmdMatch.Score,
				},
				{
					Raw:        raw,
					Normalised: alternates[0].Canonical,
					Kind:       commandKind(alternates[0].Canonical),
					Verb:       alternates[0].Canonical,
					Confidence: alternates[0].Score,
				},
			},
		}
		return intent
	}

	if needsConfirm(cmdMatch) {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{{
				Raw:        raw,
				Normalised: cmdMatch.Canonical,
				Kind:       commandKind(cmdMatch.Canonical),
				Verb:       cmdMatch.Canonical,
				Confidence: cmdMatch.Score,
			}},
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	def, _ := p.registry.command(intent.Verb)
	if def.RawArgs {
		intent.Args = rawRemainder(raw, cmdMatch.Consumed)
		return intent
	}

	argsTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argsTokens = tokens[cmdMatch.Consumed:]
	}
	if def.MaxArgs == 0 {
		// "douse the fire", "rest a while": the verb carries the meaning.
		return intent
	}

	resolvedArgs, clarify, argScore := p.resolveArgs(ctx, def, argsTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolvedArgs
	intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))

	if len(intent.Args) < def.MinArgs {
		if def.Canonical == string(game.CommandCraft) {
			intent.Clarify = &ClarifyQuestion{
				Prompt:  "What should I craft?",
				Options: recipeOptions(ctx),
			}
			intent.Confidence = 0.46
			return intent
		}
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
		intent.Confidence = 0.42
		return intent
	}

	if intent.Confidence < 0.52 {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase or pick a clearer command."}
	}
	return intent
}

func commandKind(verb string) IntentKind {
	cmd := game.Command(verb)
	switch {
	case cmd == game.CommandHelp:
		return Help
	case cmd == game.CommandSave, cmd == game.CommandLoad, cmd == game.CommandQuit:
		return Session
	case cmd.Query():
		return Query
	default:
		return Command
	}
}

// needsConfirm reports whether an edit-distance verb match is too loose to
// act on. Only long query verbs are trusted; "rest" is one letter from "test".
func needsConfirm(c commandCandidate) bool {
	if c.Source != "lev" {
		return false
	}
	return commandKind(c.Canonical) != Query || len(c.Alias) <= 4
}

var fillerWords = map[string]bool{"a": true, "an": true, "the": true, "some": true, "me": true}

// recipeAliases covers names players reach for that are too far from a
// recipe for typo matching.
var recipeAliases = map[string]string{
	"fire":      "campfire",
	"camp fire": "campfire",
	"crystal":   "spark_crystal",
	"shelter":   "lean-to",
}

func (p *Parser) resolveArgs(ctx ParseContext, def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	kept := make([]string, 0, len(args))
	for _, a := range args {
		if !fillerWords[a] {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		return nil, nil, 0.9
	}
	phrase := strings.Join(kept, " ")
	if def.Canonical != string(game.CommandCraft) {
		return []string{phrase}, nil, 0.88
	}

	if name, ok := recipeAliases[phrase]; ok {
		return []string{name}, nil, 0.92
	}
	byNorm := recipeIndex(ctx)
	names := make([]string, 0, len(byNorm))
	for n := range byNorm {
		names = append(names, n)
	}
	sort.Strings(names)

	matches, confidence, tie := bestMatches(phrase, names)
	if tie && len(matches) >= 2 {
		options := make([]Intent, 0, 2)
		for idx := 0; idx < 2; idx++ {
			options = append(options, Intent{
				Kind:       Command,
				Verb:       def.Canonical,
				Args:       []string{byNorm[matches[idx]]},
				Confidence: confidence - float64(idx)*0.01,
			})
		}
		return nil, &ClarifyQuestion{Prompt: "Which recipe?", Options: options}, 0.52
	}
	if len(matches) == 1 {
		return []string{byNorm[matches[0]]}, nil, confidence
	}
	// Left for the game to refuse as an unknown recipe.
	return []string{phrase}, nil, 0.86
}

// recipeIndex maps normalised recipe names back to their canonical form.
func recipeIndex(ctx ParseContext) map[string]string {
	recipes := ctx.Recipes
	if len(recipes) == 0 {
		recipes = game.RecipeNames()
	}
	out := make(map[string]string, len(recipes))
	for _, name := range recipes {
		if n := normaliseInput(name); n != "" {
			out[n] = name
		}
		// "leanto", "sparkcrystal"
		if joined := strings.ReplaceAll(normaliseInput(name), " ", ""); joined != "" {
			if _, ok := out[joined]; !ok {
				out[joined] = name
			}
		}
	}
	return out
}

func recipeOptions(ctx ParseContext) []Intent {
	recipes := ctx.Recipes
	if len(recipes) == 0 {
		recipes = game.RecipeNames()
	}
	options := make([]Intent, 0, len(recipes))
	for _, name := range recipes {
		options = append(options, Intent{
			Kind:       Command,
			Verb:       string(game.CommandCraft),
			Args:       []string{name},
			Confidence: 0.88,
		})
	}
	return options
}

func bestMatches(token string, all []string) ([]string, float64, bool) {
	if len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}

	results := make([]scored, 0, len(all))
	for _, cand := range all {
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func inferFreeTextIntent(raw string, normalised string) *Intent {
	n := normalised
	makeIntent := func(kind IntentKind, verb game.Command, args []string, confidence float64) *Intent {
		return &Intent{
			Raw:        raw,
			Normalised: normalised,
			Kind:       kind,
			Verb:       string(verb),
			Args:       args,
			Confidence: clampScore(confidence),
		}
	}

	if containsAnyPhrase(n, "check my bag", "check bag", "what do i have", "what have i got", "my inventory") {
		return makeIntent(Query, game.CommandInventory, nil, 0.92)
	}
	if containsAnyPhrase(n, "how am i doing", "how do i feel", "am i ok") {
		return makeIntent(Query, game.CommandStatus, nil, 0.88)
	}
	if containsAnyPhrase(n, "put the fire out", "put out the fire", "kill the fire") {
		return makeIntent(Command, game.CommandExtinguish, nil, 0.9)
	}
	if containsAnyPhrase(n, "i need a fire", "i need fire", "make a fire", "start a fire", "light a fire", "build a fire") {
		return makeIntent(Command, game.CommandCraft, []string{"campfire"}, 0.84)
	}
	if containsAnyPhrase(n, "i m thirsty", "im thirsty", "find water") {
		return makeIntent(Command, game.CommandDrink, nil, 0.8)
	}
	if containsAnyPhrase(n, "i m hungry", "im hungry", "grab a bite") {
		return makeIntent(Command, game.CommandEat, nil, 0.8)
	}
	if containsAnyPhrase(n, "i m tired", "im tired", "lie down") {
		return makeIntent(Command, game.CommandRest, nil, 0.8)
	}
	if containsAnyPhrase(n, "move on", "head out", "find a new place") {
		return makeIntent(Command, game.CommandTravel, nil, 0.82)
	}
	return nil
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IntentToCommandString renders an intent back into something the player
// could type.
func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args))
	for _, arg := range intent.Args {
		if a := strings.TrimSpace(arg); a != "" {
			args = append(args, a)
		}
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
