package catalog

var seedAssets = []Asset{
	{
		ID: "t1", Type: TypeText, Tone: []string{"warm"}, Occasion: []string{"everyday"},
		Text: "Hey. I saw something that made me think of you, and I smiled like an idiot on the tram.",
	},
	{
		ID: "t2", Type: TypeText, Tone: []string{"playful"}, Occasion: []string{"morning"},
		Text: "Morning troublemaker. Coffee or tea? I’m bringing whichever answer gets me a kiss later.",
	},
	{
		ID: "t3", Type: TypePoem, Tone: []string{"tender"}, Occasion: []string{"night"},
		Text: "Lights out. City softens.\nSomewhere between tired and calm,\nI land on you.",
	},
	{
		ID: "t4", Type: TypeText, Tone: []string{"inside"}, Occasion: []string{"everyday"},
		Text: "Your scarf color is now my default favorite. Didn’t vote on it. It just happened.",
	},
	{
		ID: "t5", Type: TypeText, Tone: []string{"playful"}, Occasion: []string{"everyday"},
		Text: "Breaking news: I miss you. Developing story: I’m doing something about it tonight.",
	},
	{
		ID: "t6", Type: TypePoem, Tone: []string{"warm"}, Occasion: []string{"everyday"},
		Text: "Small note, big meaning—\nif you need me, say the word.\nI’ll reroute my day.",
	},
	{
		ID: "i1", Type: TypeImage, Tone: []string{"tender"}, Occasion: []string{"night"},
		Caption: "Goodnight. Leave one lamp on—I like finding you.",
		SVG: `<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 1200 630'>
  <defs>
    <linearGradient id='g' x1='0' y1='0' x2='1' y2='1'>
      <stop offset='0%' stop-color='#0b1020'/>
      <stop offset='100%' stop-color='#1e2a44'/>
    </linearGradient>
  </defs>
  <rect width='1200' height='630' fill='url(#g)'/>
  <circle cx='980' cy='110' r='60' fill='#f3e9b6'/>
  <text x='80' y='500' font-size='56' fill='white' font-family='ui-sans-serif, system-ui'>goodnight—leave one lamp on</text>
</svg>`,
	},
	{
		ID: "t7", Type: TypeText, Tone: []string{"warm"}, Occasion: []string{"morning"},
		Text: "Good morning. If your day needs backup, I’m on call. Payment accepted: hugs.",
	},
	{
		ID: "t8", Type: TypeText, Tone: []string{"playful"}, Occasion: []string{"everyday"},
		Text: "Tonight: you, me, that place with the quiet corner. Dress code: your smile.",
	},
	{
		ID: "t9", Type: TypePoem, Tone: []string{"tender"}, Occasion: []string{"rainy"},
		Text: "Rain writes on windows—\nI read it as your name\nagain and again.",
	},
	{
		ID: "i2", Type: TypeImage, Tone: []string{"warm"}, Occasion: []string{"everyday"},
		Caption: "Thinking of you (accidentally on purpose).",
		SVG: `<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 1200 630'>
  <rect width='1200' height='630' fill='#f5efe6'/>
  <rect x='120' y='120' width='960' height='390' fill='#ffffff' stroke='#222' stroke-width='4' rx='22'/>
  <text x='180' y='360' font-size='54' fill='#222' font-family='ui-serif, Georgia'>thinking of you—</text>
  <text x='180' y='420' font-size='40' fill='#444' font-family='ui-sans-serif, system-ui'>accidentally on purpose</text>
</svg>`,
	},
	{
		ID: "t10", Type: TypeText, Tone: []string{"inside", "tender"}, Occasion: []string{"milestone"},
		Text: "Tiny celebration tonight for a tiny reason: you exist in my day. That’s enough for me.",
	},
}
