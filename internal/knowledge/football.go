package knowledge

// keywordTable is scanned top to bottom; earlier entries win.
var keywordTable = []Entry{
	// Copa do Mundo
	{Key: "copa do mundo", Answers: []string{
		"A Copa do Mundo FIFA é realizada a cada 4 anos e é o torneio mais prestigioso do futebol. A última foi no Catar em 2022, vencida pela Argentina. A próxima será em 2026 nos EUA, Canadá e México.",
		"Desde 1930, a Copa do Mundo já teve 22 edições. O Brasil é o maior campeão com 5 títulos (1958, 1962, 1970, 1994, 2002), seguido pela Alemanha e Itália com 4 títulos cada.",
	}},

	// Jogadores históricos
	{Key: "pelé", Answers: []string{
		"Pelé (1940-2022) é considerado o Rei do Futebol. Único tricampeão mundial (1958, 1962, 1970), marcou mais de 1000 gols na carreira. Jogou a maior parte da carreira no Santos e é uma lenda eterna do futebol brasileiro.",
		"Edson Arantes do Nascimento, o Pelé, revolucionou o futebol com sua técnica, velocidade e inteligência. Foi eleito o atleta do século XX e inspirou gerações de jogadores ao redor do mundo.",
	}},
	{Key: "messi", Answers: []string{
		"Lionel Messi, argentino nascido em 1987, é considerado um dos GOATs do futebol. Tem 8 Bolas de Ouro (recorde), conquistou tudo pelo Barcelona e coroou a carreira com a Copa de 2022. Atualmente joga no Inter Miami.",
		"La Pulga possui recordes impressionantes: mais de 800 gols na carreira, maior artilheiro da história do Barcelona, único com 8 Bolas de Ouro. Sua visão de jogo e dribles são únicos no futebol moderno.",
	}},
	{Key: "cristiano ronaldo", Answers: []string{
		"Cristiano Ronaldo, português nascido em 1985, é uma máquina de gols. Com 5 Bolas de Ouro, conquistou títulos em 4 países diferentes. É o maior artilheiro da história e atualmente joga no Al-Nassr.",
		"CR7 é conhecido por sua dedicação física excepcional e mentalidade vencedora. Maior artilheiro das Champions League e da seleção portuguesa, é um dos atletas mais seguidos do mundo.",
	}},

	// Competições
	{Key: "champions league", Answers: []string{
		"A UEFA Champions League é a competição de clubes mais prestigiosa da Europa. O Real Madrid lidera com 15 títulos, seguido pelo Milan (7) e Bayern/Liverpool (6 cada). A final sempre é um espetáculo global.",
		"Criada em 1955 como Copa dos Campeões Europeus, a Champions reúne a elite do futebol europeu. O formato atual com fase de grupos começou em 1992 e desde então tem crescido em popularidade mundial.",
	}},
	{Key: "libertadores", Answers: []string{
		"A Copa Libertadores é a Champions da América do Sul. O Independiente (ARG) lidera com 7 títulos, seguido pelo Boca Juniors (6). Entre brasileiros, Palmeiras tem 3, seguido por vários clubes com 2 títulos cada.",
		"Criada em 1960, a Libertadores é palco de grandes rivalidades sul-americanas. River x Boca, Flamengo x Fluminense, Palmeiras x Corinthians são alguns dos clássicos que emocionam o continente.",
	}},

	// Campeonatos nacionais
	{Key: "brasileirão", Answers: []string{
		"O Campeonato Brasileiro é uma das ligas mais equilibradas do mundo. Palmeiras lidera com 12 títulos, seguido por Santos (8), Corinthians (7), Flamengo (8) e São Paulo (6). A competição começou em 1959.",
		"O Brasileirão formato pontos corridos começou em 2003 e é conhecido pela competitividade. Raramente há um campeão antecipado, tornando cada rodada emocionante até o final do campeonato.",
	}},
	{Key: "premier league", Answers: []string{
		"A Premier League inglesa é considerada a liga mais competitiva do mundo. Manchester United lidera com 20 títulos, seguido por Liverpool (19) e Arsenal (13). O City domina a era recente com Guardiola.",
		"Criada em 1992, a Premier League revolucionou o futebol com marketing global e estádios lotados. É a liga que mais arrecada no mundo e atrai os melhores jogadores de todos os continentes.",
	}},
	{Key: "la liga", Answers: []string{
		"La Liga espanhola é o lar de Real Madrid e Barcelona, os dois clubes mais vitoriosos. Real tem 35 títulos, Barça tem 27. A liga é famosa pelo futebol técnico e pelos galácticos que já passaram por lá.",
		"El Clásico entre Real Madrid e Barcelona é um dos maiores jogos do mundo. La Liga revelou craques como Messi, Ronaldinho, Zidane, e continua sendo destino dos melhores jogadores do planeta.",
	}},

	// Prêmios individuais
	{Key: "bola de ouro", Answers: []string{
		"A Bola de Ouro é o prêmio individual mais prestigioso. Messi detém o recorde com 8 (2009-2012, 2015, 2019, 2021, 2023), seguido por Cristiano com 5. Em 2024, Rodri do Manchester City foi o vencedor.",
		"Criado em 1956 pela revista France Football, o prêmio já teve diversos critérios. Modric (2018) quebrou a hegemonia Messi-Cristiano que durou uma década, e Benzema (2022) foi outro a conquistar entre os dois.",
	}},
}

var factPool = []string{
	"O jogo de futebol mais antigo registrado foi em 1863, quando foram criadas as primeiras regras oficiais na Inglaterra.",
	"O maior placar de uma Copa do Mundo foi Hungria 10 x 1 El Salvador, em 1982.",
	"Pelé é o único jogador a participar de três Copas do Mundo vencedoras (1958, 1962, 1970).",
	"O estádio do Maracanã já recebeu mais de 200.000 pessoas em uma única partida (final da Copa de 1950).",
	"Messi é o único jogador a marcar em 5 Copas do Mundo diferentes (2006, 2010, 2014, 2018, 2022).",
	"O Real Madrid é o único clube a vencer 5 Champions League consecutivas (1956-1960).",
	"O Brasil é o único país a participar de todas as Copas do Mundo desde 1930.",
	"Cristiano Ronaldo é o único jogador a marcar em 5 Copas do Mundo e 5 Eurocopas diferentes.",
	"O menor país a se classificar para uma Copa do Mundo foi a Islândia em 2018, com cerca de 330.000 habitantes.",
	"Just Fontaine detém o recorde de gols em uma única Copa do Mundo: 13 gols em 1958.",
}

// faqTable keys are stored already lowercased.
var faqTable = []Entry{
	{Key: "quem é o maior jogador de todos os tempos", Answers: []string{
		"Esta é uma das maiores discussões do futebol! Os principais candidatos são Pelé (único tricampeão mundial, mais de 1000 gols), Messi (8 Bolas de Ouro, Copa de 2022) e Cristiano Ronaldo (maior artilheiro da história, 5 Bolas de Ouro). Cada um tem seus méritos únicos!",
	}},
	{Key: "qual o maior clube do mundo", Answers: []string{
		"Também é muito debatido! Real Madrid tem 15 Champions e é o clube mais valioso. Barcelona tem a maior torcida global. Manchester United tem grande história e valor comercial. No Brasil, Flamengo tem a maior torcida. Cada clube tem suas grandezas específicas!",
	}},
	{Key: "quando é a próxima copa do mundo", Answers: []string{
		"A próxima Copa do Mundo FIFA será em 2026, realizada conjuntamente por Estados Unidos, Canadá e México. Será a primeira Copa com 48 seleções (atualmente são 32). A Copa seguinte será em 2030, centenário do torneio.",
	}},
	{Key: "qual seleção tem mais títulos", Answers: []string{
		"O Brasil é o maior campeão mundial com 5 títulos (1958, 1962, 1970, 1994, 2002). Alemanha e Itália têm 4 cada, Argentina e França têm 3 cada, e Uruguai e Inglaterra têm 2 cada. Espanha tem 1 título (2010).",
	}},
}

var domainTokens = []string{"futebol", "soccer", "gol", "time", "clube", "jogador", "campo", "bola", "partida", "jogo"}

const (
	factPrefix = "Aqui está uma curiosidade do futebol: "
	factSuffix = "\n\nTem alguma pergunta específica sobre futebol que posso ajudar?"

	outOfDomainMessage = "Sou especializado em futebol! 🚨 Posso ajudar com informações sobre jogadores, times, competições, história do futebol e muito mais. Que tal me perguntar sobre sua seleção favorita, um jogador específico ou alguma competição?"
)

var suggestedQuestions = []string{
	"Quando foi a última Copa do Mundo?",
	"Quem é o maior jogador de todos os tempos?",
	"Quantas Champions League o Real Madrid tem?",
	"Qual time tem mais Brasileirões?",
	"Quem ganhou a Bola de Ouro de 2024?",
	"Como está o Palmeiras este ano?",
	"Qual a história do Pelé?",
	"Quando é a próxima Copa do Mundo?",
	"Quem são os maiores artilheiros da história?",
	"Qual o maior clássico do futebol brasileiro?",
}

// quickAnswers are exact matches served by the backend before any model call.
var quickAnswers = []Entry{
	{Key: "oi", Answers: []string{"Olá! Sou seu assistente especializado em Copa do Mundo FIFA. Como posso ajudar?"}},
	{Key: "olá", Answers: []string{"Olá! Sou seu assistente especializado em Copa do Mundo FIFA. Como posso ajudar?"}},
	{Key: "hello", Answers: []string{"Hello! I'm your FIFA World Cup specialist assistant. How can I help?"}},
	{Key: "hi", Answers: []string{"Oi! Sou especialista em Copa do Mundo FIFA. O que você gostaria de saber?"}},
	{Key: "quem ganhou a copa de 1970", Answers: []string{"O Brasil conquistou a Copa do Mundo de 1970, realizada no México. Foi o terceiro título mundial brasileiro."}},
	{Key: "artilheiro copa 1970", Answers: []string{"Gerd Müller (Alemanha Ocidental) foi o artilheiro da Copa de 1970 com 10 gols."}},
	{Key: "quantas copas o brasil tem", Answers: []string{"O Brasil conquistou 5 Copas do Mundo: 1958 (Suécia), 1962 (Chile), 1970 (México), 1994 (EUA), 2002 (Japão/Coreia do Sul)."}},
	{Key: "próxima copa", Answers: []string{"A próxima Copa do Mundo será em 2026, realizada conjuntamente pelos EUA, Canadá e México, com 48 seleções."}},
}
