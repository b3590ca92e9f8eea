package game

import "strings"

// Command is a player verb understood by the core or the session around it.
type Command string

const (
	CommandNone       Command = ""
	CommandLook       Command = "look"
	CommandStatus     Command = "status"
	CommandInventory  Command = "inventory"
	CommandGather     Command = "gather"
	CommandHunt       Command = "hunt"
	CommandDrink      Command = "drink"
	CommandEat        Command = "eat"
	CommandCook       Command = "cook"
	CommandTravel     Command = "travel"
	CommandRest       Command = "rest"
	CommandExtinguish Command = "extinguish"
	CommandCraft      Command = "craft"
	CommandSave       Command = "save"
	CommandLoad       Command = "load"
	CommandHelp       Command = "help"
	CommandQuit       Command = "quit"
)

// Commands lists every verb in help order.
var Commands = []Command{
	CommandLook, CommandStatus, CommandInventory,
	CommandGather, CommandHunt, CommandDrink, CommandEat, CommandRest, CommandTravel,
	CommandCraft, CommandCook, CommandExtinguish,
	CommandSave, CommandLoad, CommandHelp, CommandQuit,
}

// ParseCommand maps a canonical verb to its Command.
func ParseCommand(verb string) (Command, bool) {
	verb = strings.ToLower(strings.TrimSpace(verb))
	for _, c := range Commands {
		if string(c) == verb {
			return c, true
		}
	}
	return CommandNone, false
}

// Query reports verbs that only read state.
func (c Command) Query() bool {
	switch c {
	case CommandLook, CommandStatus, CommandInventory, CommandHelp:
		return true
	}
	return false
}

// Core reports verbs the game resolves itself; the rest belong to the session.
func (c Command) Core() bool {
	_, ok := handlers[c]
	return ok
}

type handler func(g *Game, arg string) Outcome

var handlers = map[Command]handler{
	CommandLook:       func(g *Game, _ string) Outcome { return g.Look() },
	CommandStatus:     func(g *Game, _ string) Outcome { return g.Status() },
	CommandInventory:  func(g *Game, _ string) Outcome { return g.ShowInventory() },
	CommandGather:     func(g *Game, _ string) Outcome { return g.Gather() },
	CommandHunt:       func(g *Game, _ string) Outcome { return g.Hunt() },
	CommandDrink:      func(g *Game, _ string) Outcome { return g.Drink() },
	CommandEat:        func(g *Game, _ string) Outcome { return g.Eat() },
	CommandCook:       func(g *Game, _ string) Outcome { return g.Cook() },
	CommandTravel:     func(g *Game, _ string) Outcome { return g.Travel() },
	CommandRest:       func(g *Game, _ string) Outcome { return g.Rest() },
	CommandExtinguish: func(g *Game, _ string) Outcome { return g.Extinguish() },
	CommandCraft:      func(g *Game, arg string) Outcome { return g.Craft(arg) },
}

// Execute dispatches a core command. Unknown or session-only commands are
// rejected without touching state.
func (g *Game) Execute(cmd Command, arg string) Outcome {
	h, ok := handlers[cmd]
	if !ok {
		return refuse(cmd, TagUnknownCommand, string(cmd), 0)
	}
	return h(g, strings.TrimSpace(arg))
}

func (g *Game) Look() Outcome {
	env := g.Location()
	out := Outcome{Command: CommandLook}
	out.emit(TagLook, env.Name, g.Player.Location, env.Terrain)
	return out
}

func (g *Game) Status() Outcome {
	out := Outcome{Command: CommandStatus}
	out.emit(TagStatus, g.Player.Shelter.Label(), g.Player.Health, "")
	return out
}

func (g *Game) ShowInventory() Outcome {
	out := Outcome{Command: CommandInventory}
	out.emit(TagInventory, "", len(g.Player.Inventory.Items()), "")
	return out
}
