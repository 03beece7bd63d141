// Copyright (c) 2026 Grimoire. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package i18n

var portuguese = map[string]string{
	"app.title":     "Grimoire",
	"nav.items":     "Itens",
	"nav.bosses":    "Chefes",
	"count.showing": "Exibindo",

	"item.one":   "item",
	"item.other": "itens",
	"boss.one":   "chefe",
	"boss.other": "chefes",

	"search.items":       "Buscar itens...",
	"search.bosses":      "Buscar chefes...",
	"filter.all":         "Todos",
	"filter.category":    "Categoria",
	"filter.rarity":      "Raridade",
	"filter.difficulty":  "Dificuldade",
	"sort.label":         "Ordenar",
	"sort.progression":   "Ordem de progressão",
	"sort.alphabetical":  "Ordem alfabética",
	"action.apply":       "Filtrar",
	"action.reset":       "Limpar filtros",
	"action.close":       "Fechar",
	"empty.title":        "Nenhum resultado encontrado",
	"empty.hint":         "Tente ajustar os filtros ou o termo de busca",
	"error.items":        "Erro ao carregar os itens",
	"error.bosses":       "Erro ao carregar os chefes",
	"error.hint":         "Verifique se o arquivo data.json está presente",
	"icon.alt.item":      "Ícone do item",
	"icon.alt.boss":      "Ícone do chefe",
	"icon.failed":        "❌ Imagem não carregou",
	"icon.failed.path":   "❌ Erro: %s",
	"boss.summon":        "🎯 Invocação:",
	"boss.order":         "#%v na Progressão",
	"detail.summon":      "🎯 Como Invocar",
	"detail.combat":      "📊 Informações de Combate",
	"detail.stats":       "📊 Atributos",
	"detail.tips":        "💡 Dicas de Combate",
	"detail.rewards":     "🎁 Recompensas Principais",
	"stat.health":        "❤️ Vida:",
	"stat.defense":       "🛡️ Defesa:",
	"stat.damage":        "⚔️ Dano:",
	"stat.contactDamage": "⚔️ Dano (Contato):",
	"stat.speed":         "💨 Velocidade:",
}

var english = map[string]string{
	"app.title":     "Grimoire",
	"nav.items":     "Items",
	"nav.bosses":    "Bosses",
	"count.showing": "Showing",

	"item.one":   "item",
	"item.other": "items",
	"boss.one":   "boss",
	"boss.other": "bosses",

	"search.items":       "Search items...",
	"search.bosses":      "Search bosses...",
	"filter.all":         "All",
	"filter.category":    "Category",
	"filter.rarity":      "Rarity",
	"filter.difficulty":  "Difficulty",
	"sort.label":         "Sort",
	"sort.progression":   "Progression order",
	"sort.alphabetical":  "Alphabetical order",
	"action.apply":       "Filter",
	"action.reset":       "Reset filters",
	"action.close":       "Close",
	"empty.title":        "No results found",
	"empty.hint":         "Try adjusting the filters or the search term",
	"error.items":        "Error loading the items",
	"error.bosses":       "Error loading the bosses",
	"error.hint":         "Check that the data.json file is present",
	"icon.alt.item":      "Item icon",
	"icon.alt.boss":      "Boss icon",
	"icon.failed":        "❌ Image failed to load",
	"icon.failed.path":   "❌ Error: %s",
	"boss.summon":        "🎯 Summon:",
	"boss.order":         "#%v in Progression",
	"detail.summon":      "🎯 How to Summon",
	"detail.combat":      "📊 Combat Information",
	"detail.stats":       "📊 Stats",
	"detail.tips":        "💡 Combat Tips",
	"detail.rewards":     "🎁 Main Rewards",
	"stat.health":        "❤️ Health:",
	"stat.defense":       "🛡️ Defense:",
	"stat.damage":        "⚔️ Damage:",
	"stat.contactDamage": "⚔️ Damage (Contact):",
	"stat.speed":         "💨 Speed:",
}
