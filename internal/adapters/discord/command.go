package discord

import "github.com/bwmarrin/discordgo"

var teamSizeChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "1 joueur (défis solo)", Value: 1},
	{Name: "2 joueurs (Crucible, Gambit)", Value: 2},
	{Name: "3 joueurs (Épreuves, Donjons)", Value: 3},
	{Name: "4 joueurs (Assauts)", Value: 4},
	{Name: "6 joueurs (Raids)", Value: 6},
}

func eventIDOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "event_id",
		Description: description,
		Required:    true,
	}
}

// commandDefinitions lists every slash command the bot registers.
var commandDefinitions = []*discordgo.ApplicationCommand{
	{
		Name:        "create-event",
		Description: "Créer un nouvel événement de clan",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "type",
				Description: "Type d'événement",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Bingo", Value: "Bingo"},
					{Name: "Tournoi JcJ", Value: "Tournoi JcJ"},
					{Name: "Événement général", Value: "Événement général"},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Nom de l'événement",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "date",
				Description: "Date de l'événement (JJ/MM/AAAA)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "heure",
				Description: "Heure de l'événement (HH:MM)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "description",
				Description: "Description (générée depuis le type si vide)",
				Required:    false,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "team_size",
				Description: "Taille des équipes",
				Required:    false,
				Choices:     teamSizeChoices,
			},
		},
	},
	{
		Name:        "events",
		Description: "Lister tous les événements actifs du serveur",
	},
	{
		Name:        "event-info",
		Description: "Afficher les informations détaillées d'un événement",
		Options:     []*discordgo.ApplicationCommandOption{eventIDOption("L'ID de l'événement à voir")},
	},
	{
		Name:        "join-event",
		Description: "Rejoindre un événement",
		Options:     []*discordgo.ApplicationCommandOption{eventIDOption("L'ID de l'événement à rejoindre")},
	},
	{
		Name:        "leave-event",
		Description: "Quitter un événement",
		Options:     []*discordgo.ApplicationCommandOption{eventIDOption("L'ID de l'événement à quitter")},
	},
	{
		Name:        "start-event",
		Description: "Démarrer un événement (organisateur/admin)",
		Options:     []*discordgo.ApplicationCommandOption{eventIDOption("L'ID de l'événement à démarrer")},
	},
	{
		Name:        "complete-event",
		Description: "Terminer un événement en cours (organisateur/admin)",
		Options:     []*discordgo.ApplicationCommandOption{eventIDOption("L'ID de l'événement à terminer")},
	},
	{
		Name:        "cancel-event",
		Description: "Annuler un événement (organisateur/admin)",
		Options:     []*discordgo.ApplicationCommandOption{eventIDOption("L'ID de l'événement à annuler")},
	},
	{
		Name:        "delete-event",
		Description: "Supprimer un événement (organisateur/admin)",
		Options:     []*discordgo.ApplicationCommandOption{eventIDOption("L'ID de l'événement à supprimer")},
	},
	{
		Name:        "clear-events",
		Description: "Effacer tous les événements de ce serveur",
	},
	{
		Name:        "randomize-teams",
		Description: "Tirer les équipes au sort pour un événement",
		Options: []*discordgo.ApplicationCommandOption{
			eventIDOption("L'ID de l'événement"),
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "team_size",
				Description: "Nombre de joueurs par équipe",
				Required:    true,
				Choices:     teamSizeChoices,
			},
		},
	},
	{
		Name:        "show-teams",
		Description: "Afficher les équipes d'un événement",
		Options:     []*discordgo.ApplicationCommandOption{eventIDOption("L'ID de l'événement")},
	},
	{
		Name:        "clear-teams",
		Description: "Effacer les équipes d'un événement",
		Options:     []*discordgo.ApplicationCommandOption{eventIDOption("L'ID de l'événement")},
	},
	{
		Name:        "team-stats",
		Description: "Statistiques des équipes d'un événement",
		Options:     []*discordgo.ApplicationCommandOption{eventIDOption("L'ID de l'événement")},
	},
	{
		Name:        "activer-pointage",
		Description: "Activer le système de pointage pour un événement",
		Options: []*discordgo.ApplicationCommandOption{
			eventIDOption("ID de l'événement"),
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "duree_minutes",
				Description: "Durée du pointage en minutes (0 = sans limite)",
				Required:    false,
			},
		},
	},
	{
		Name:        "desactiver-pointage",
		Description: "Désactiver le système de pointage pour un événement",
		Options:     []*discordgo.ApplicationCommandOption{eventIDOption("ID de l'événement")},
	},
	{
		Name:        "pointer",
		Description: "Se pointer à un événement",
		Options:     []*discordgo.ApplicationCommandOption{eventIDOption("ID de l'événement")},
	},
	{
		Name:        "rapport-presence",
		Description: "Afficher le rapport de présence d'un événement",
		Options:     []*discordgo.ApplicationCommandOption{eventIDOption("ID de l'événement")},
	},
}
