package catalog

import "github.com/abhisek/mathstudio/internal/problem"

// proportionProblems is the proportion bank: direct and inverse proportion
// drills for Easy through Hard, plus applied word problems at Expert.
var proportionProblems = []problem.Problem{
	{
		ID:       "prop-easy-01",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierEasy,
		Unit:     "比例",
		Text:     "y = 3x のとき、x = 4 ならば y はいくつですか。",
		Answer:   "12",
		Variants: []string{"y=12", "y = 12"},
		Hints: []string{
			"y = 3x の x のところに 4 を入れます。",
			"y = 3 × 4 を計算してみましょう。",
		},
		Chips: []string{"3", "4", "12", "x", "y", "=", "×"},
	},
	{
		ID:       "prop-easy-02",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierEasy,
		Unit:     "比例",
		Text:     "y = 2x で y = 10 のとき、x の値を求めなさい。",
		Answer:   "5",
		Variants: []string{"x=5", "x = 5"},
		Hints: []string{
			"y = 2x に y = 10 を代入します。",
			"10 = 2x となります。x を求めるには両辺を 2 で割ります。",
		},
		Chips: []string{"2", "5", "10", "x", "y", "=", "÷"},
	},
	{
		ID:       "prop-easy-03",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierEasy,
		Unit:     "比例",
		Text:     "y = 5x のとき、x = 3 ならば y はいくつですか。",
		Answer:   "15",
		Variants: []string{"y=15", "y = 15"},
		Hints: []string{
			"x = 3 を式に代入します。",
			"y = 5 × 3 を計算しましょう。",
		},
		Chips: []string{"3", "5", "15", "x", "y", "=", "×"},
	},
	{
		ID:       "prop-easy-04",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierEasy,
		Unit:     "比例",
		Text:     "y = 4x のとき、x = 6 ならば y はいくつですか。",
		Answer:   "24",
		Variants: []string{"y=24", "y = 24"},
		Hints: []string{
			"x = 6 を式に代入します。",
			"y = 4 × 6 を計算しましょう。",
		},
		Chips: []string{"4", "6", "24", "x", "y", "=", "×"},
	},
	{
		ID:       "prop-easy-05",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierEasy,
		Unit:     "比例",
		Text:     "y = 7x で y = 21 のとき、x の値を求めなさい。",
		Answer:   "3",
		Variants: []string{"x=3", "x = 3"},
		Hints: []string{
			"y = 7x に y = 21 を代入します。",
			"21 = 7x なので、x = 21 ÷ 7",
		},
		Chips: []string{"3", "7", "21", "x", "y", "=", "÷"},
	},
	{
		ID:       "prop-easy-06",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierEasy,
		Unit:     "比例",
		Text:     "y = 6x のとき、x = 5 ならば y はいくつですか。",
		Answer:   "30",
		Variants: []string{"y=30", "y = 30"},
		Hints: []string{
			"x = 5 を式に代入します。",
			"y = 6 × 5 を計算しましょう。",
		},
		Chips: []string{"5", "6", "30", "x", "y", "=", "×"},
	},
	{
		ID:       "prop-normal-01",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierNormal,
		Unit:     "比例",
		Text:     "y は x に比例し、x = 2 のとき y = 6 です。比例定数 a を求めなさい。",
		Answer:   "3",
		Variants: []string{"a=3", "a = 3"},
		Hints: []string{
			"y が x に比例するので y = ax と書けます。",
			"x = 2, y = 6 を代入すると 6 = a × 2 となります。",
			"両辺を 2 で割って a を求めます。",
		},
		Chips: []string{"2", "3", "6", "a", "x", "y", "=", "×", "÷"},
	},
	{
		ID:       "prop-normal-02",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierNormal,
		Unit:     "比例",
		Text:     "1分間に 5cm ずつ進むロボットがあります。x 分間で進む距離を y cm として、y を x の式で表しなさい。",
		Answer:   "y=5x",
		Variants: []string{"y = 5x", "y=5*x"},
		Hints: []string{
			"1分で 5cm 進むということは、x分では何cm進むでしょう？",
			"時間 × 速さ = 距離 の関係を使います。",
			"x分 × 5cm = □cm",
		},
		Chips: []string{"1", "5", "x", "y", "=", "×", "cm", "分"},
	},
	{
		ID:       "prop-normal-03",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierNormal,
		Unit:     "比例",
		Text:     "1個 80円 のりんごを x 個買ったときの代金を y 円とします。y を x の式で表しなさい。",
		Answer:   "y=80x",
		Variants: []string{"y = 80x", "y=80*x"},
		Hints: []string{
			"単価 × 個数 = 合計金額 の関係です。",
			"1個 80円 なので、x個では 80 × x 円かかります。",
		},
		Chips: []string{"80", "x", "y", "=", "×", "円", "個"},
	},
	{
		ID:       "prop-normal-04",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierNormal,
		Unit:     "比例",
		Text:     "y は x に比例し、x = 5 のとき y = 20 です。y を x の式で表しなさい。",
		Answer:   "y=4x",
		Variants: []string{"y = 4x", "y=4*x"},
		Hints: []string{
			"まず比例定数 a を求めます。y = ax に代入します。",
			"20 = a × 5 から a = 4 です。",
			"よって y = 4x となります。",
		},
		Chips: []string{"4", "5", "20", "a", "x", "y", "=", "×"},
	},
	{
		ID:       "prop-normal-05",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierNormal,
		Unit:     "比例",
		Text:     "水槽に毎分 3L ずつ水を入れます。x 分後の水の量を y L とするとき、y を x の式で表しなさい。",
		Answer:   "y=3x",
		Variants: []string{"y = 3x", "y=3*x"},
		Hints: []string{
			"1分で 3L 入るなら、x分では？",
			"時間 × 速さ = 量 の関係です。",
		},
		Chips: []string{"3", "x", "y", "=", "×", "L", "分"},
	},
	{
		ID:       "prop-normal-06",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierNormal,
		Unit:     "比例",
		Text:     "y は x に比例し、x = 3 のとき y = 15 です。x = 7 のとき y の値を求めなさい。",
		Answer:   "35",
		Variants: []string{"y=35", "y = 35"},
		Hints: []string{
			"まず比例定数を求めます。15 = a × 3 から a = 5",
			"y = 5x に x = 7 を代入します。",
			"y = 5 × 7 = 35",
		},
		Chips: []string{"3", "5", "7", "15", "35", "x", "y", "=", "×"},
	},
	{
		ID:       "prop-hard-01",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierHard,
		Unit:     "比例",
		Text:     "グラフが点 (4, 12) を通る比例の式を求めなさい。",
		Answer:   "y=3x",
		Variants: []string{"y = 3x", "y=3*x"},
		Hints: []string{
			"比例は y = ax の形です。",
			"点 (4, 12) は x = 4, y = 12 を意味します。",
			"12 = a × 4 から a を求めます。a = 3 です。",
		},
		Chips: []string{"3", "4", "12", "a", "x", "y", "=", "×", "÷"},
	},
	{
		ID:       "prop-hard-02",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierHard,
		Unit:     "比例",
		Text:     "y = 2x で、x の変域が 1 ≦ x ≦ 5 のとき、y の変域を求めなさい。",
		Answer:   "2≦y≦10",
		Variants: []string{"2 ≦ y ≦ 10", "2<=y<=10", "2 <= y <= 10"},
		Hints: []string{
			"x = 1 のとき y = 2 × 1 = 2",
			"x = 5 のとき y = 2 × 5 = 10",
			"比例定数が正なので、x が増えると y も増えます。",
		},
		Chips: []string{"1", "2", "5", "10", "x", "y", "≦", "="},
	},
	{
		ID:       "prop-hard-03",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierHard,
		Unit:     "比例",
		Text:     "グラフが点 (-2, 8) を通る比例の式を求めなさい。",
		Answer:   "y=-4x",
		Variants: []string{"y = -4x", "y=-4*x"},
		Hints: []string{
			"比例は y = ax の形です。点を代入します。",
			"8 = a × (-2) より a = 8 ÷ (-2) = -4",
			"よって y = -4x",
		},
		Chips: []string{"-4", "-2", "8", "a", "x", "y", "=", "×", "÷"},
	},
	{
		ID:       "prop-hard-04",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierHard,
		Unit:     "比例",
		Text:     "y = -3x で、x の変域が -2 ≦ x ≦ 4 のとき、y の変域を求めなさい。",
		Answer:   "-12≦y≦6",
		Variants: []string{"-12 ≦ y ≦ 6", "-12<=y<=6"},
		Hints: []string{
			"x = -2 のとき y = -3 × (-2) = 6",
			"x = 4 のとき y = -3 × 4 = -12",
			"比例定数が負なので、x が増えると y は減ります。",
		},
		Chips: []string{"-12", "-3", "-2", "4", "6", "x", "y", "≦", "="},
	},
	{
		ID:       "inv-easy-01",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierEasy,
		Unit:     "反比例",
		Text:     "y = 12/x のとき、x = 3 ならば y はいくつですか。",
		Answer:   "4",
		Variants: []string{"y=4", "y = 4"},
		Hints: []string{
			"y = 12/x に x = 3 を代入します。",
			"y = 12 ÷ 3 を計算しましょう。",
		},
		Chips: []string{"3", "4", "12", "x", "y", "=", "÷"},
	},
	{
		ID:       "inv-easy-02",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierEasy,
		Unit:     "反比例",
		Text:     "y = 20/x で y = 5 のとき、x の値を求めなさい。",
		Answer:   "4",
		Variants: []string{"x=4", "x = 4"},
		Hints: []string{
			"5 = 20/x という式になります。",
			"xy = 20 なので、5 × x = 20 です。",
			"x = 20 ÷ 5 = 4",
		},
		Chips: []string{"4", "5", "20", "x", "y", "=", "×", "÷"},
	},
	{
		ID:       "inv-easy-03",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierEasy,
		Unit:     "反比例",
		Text:     "y = 18/x のとき、x = 6 ならば y はいくつですか。",
		Answer:   "3",
		Variants: []string{"y=3", "y = 3"},
		Hints: []string{
			"x = 6 を式に代入します。",
			"y = 18 ÷ 6 を計算します。",
		},
		Chips: []string{"3", "6", "18", "x", "y", "=", "÷"},
	},
	{
		ID:       "inv-easy-04",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierEasy,
		Unit:     "反比例",
		Text:     "y = 24/x のとき、x = 8 ならば y はいくつですか。",
		Answer:   "3",
		Variants: []string{"y=3", "y = 3"},
		Hints: []string{
			"x = 8 を式に代入します。",
			"y = 24 ÷ 8 を計算します。",
		},
		Chips: []string{"3", "8", "24", "x", "y", "=", "÷"},
	},
	{
		ID:       "inv-easy-05",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierEasy,
		Unit:     "反比例",
		Text:     "y = 30/x で y = 6 のとき、x の値を求めなさい。",
		Answer:   "5",
		Variants: []string{"x=5", "x = 5"},
		Hints: []string{
			"6 = 30/x という式になります。",
			"x = 30 ÷ 6 = 5",
		},
		Chips: []string{"5", "6", "30", "x", "y", "=", "÷"},
	},
	{
		ID:       "inv-easy-06",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierEasy,
		Unit:     "反比例",
		Text:     "y = 16/x のとき、x = 4 ならば y はいくつですか。",
		Answer:   "4",
		Variants: []string{"y=4", "y = 4"},
		Hints: []string{
			"x = 4 を式に代入します。",
			"y = 16 ÷ 4 を計算します。",
		},
		Chips: []string{"4", "16", "x", "y", "=", "÷"},
	},
	{
		ID:       "inv-normal-01",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierNormal,
		Unit:     "反比例",
		Text:     "y は x に反比例し、x = 4 のとき y = 6 です。比例定数 a を求めなさい。",
		Answer:   "24",
		Variants: []string{"a=24", "a = 24"},
		Hints: []string{
			"反比例は y = a/x の形です。",
			"xy = a（一定）という関係を使います。",
			"4 × 6 = 24",
		},
		Chips: []string{"4", "6", "24", "a", "x", "y", "=", "×"},
	},
	{
		ID:       "inv-normal-02",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierNormal,
		Unit:     "反比例",
		Text:     "面積が 36 cm² の長方形があります。縦の長さを x cm、横の長さを y cm とするとき、y を x の式で表しなさい。",
		Answer:   "y=36/x",
		Variants: []string{"y = 36/x", "y=36÷x"},
		Hints: []string{
			"長方形の面積 = 縦 × 横 = xy",
			"xy = 36 なので、y について解きます。",
			"両辺を x で割ると y = 36/x",
		},
		Chips: []string{"36", "x", "y", "=", "×", "÷", "cm²", "cm"},
	},
	{
		ID:       "inv-normal-03",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierNormal,
		Unit:     "反比例",
		Text:     "1200mの道のりを、毎分 x mの速さで歩くときにかかる時間を y 分とします。y を x の式で表しなさい。",
		Answer:   "y=1200/x",
		Variants: []string{"y = 1200/x", "y=1200÷x"},
		Hints: []string{
			"道のり = 速さ × 時間 の関係を使います。",
			"時間 = 道のり ÷ 速さ に書き換えます。",
			"y = 1200 ÷ x = 1200/x",
		},
		Chips: []string{"1200", "x", "y", "=", "÷", "m", "分"},
	},
	{
		ID:       "inv-normal-04",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierNormal,
		Unit:     "反比例",
		Text:     "y は x に反比例し、x = 5 のとき y = 8 です。y を x の式で表しなさい。",
		Answer:   "y=40/x",
		Variants: []string{"y = 40/x", "y=40÷x"},
		Hints: []string{
			"xy = a なので、5 × 8 = 40",
			"よって y = 40/x",
		},
		Chips: []string{"5", "8", "40", "x", "y", "=", "×", "÷"},
	},
	{
		ID:       "inv-normal-05",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierNormal,
		Unit:     "反比例",
		Text:     "60個のあめを x 人で等しく分けると、1人あたり y 個もらえます。y を x の式で表しなさい。",
		Answer:   "y=60/x",
		Variants: []string{"y = 60/x", "y=60÷x"},
		Hints: []string{
			"全体 ÷ 人数 = 1人あたりの個数",
			"y = 60 ÷ x",
		},
		Chips: []string{"60", "x", "y", "=", "÷", "個", "人"},
	},
	{
		ID:       "inv-normal-06",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierNormal,
		Unit:     "反比例",
		Text:     "y は x に反比例し、x = 3 のとき y = 12 です。x = 9 のとき y の値を求めなさい。",
		Answer:   "4",
		Variants: []string{"y=4", "y = 4"},
		Hints: []string{
			"まず xy = a を求めます。3 × 12 = 36",
			"x = 9 のとき、9 × y = 36",
			"y = 36 ÷ 9 = 4",
		},
		Chips: []string{"3", "4", "9", "12", "36", "x", "y", "=", "×", "÷"},
	},
	{
		ID:       "inv-hard-01",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierHard,
		Unit:     "反比例",
		Text:     "グラフが点 (3, 8) を通る反比例の式を求めなさい。",
		Answer:   "y=24/x",
		Variants: []string{"y = 24/x", "y=24÷x"},
		Hints: []string{
			"反比例は y = a/x の形です。",
			"点 (3, 8) では xy = a なので、3 × 8 = 24",
			"よって y = 24/x",
		},
		Chips: []string{"3", "8", "24", "a", "x", "y", "=", "×", "÷"},
	},
	{
		ID:       "inv-hard-02",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierHard,
		Unit:     "反比例",
		Text:     "y = 24/x で、x の変域が 2 ≦ x ≦ 6 のとき、y の変域を求めなさい。",
		Answer:   "4≦y≦12",
		Variants: []string{"4 ≦ y ≦ 12", "4<=y<=12", "4 <= y <= 12"},
		Hints: []string{
			"x = 2 のとき y = 24 ÷ 2 = 12",
			"x = 6 のとき y = 24 ÷ 6 = 4",
			"反比例では x が増えると y は減ります。",
		},
		Chips: []string{"2", "4", "6", "12", "24", "x", "y", "≦", "="},
	},
	{
		ID:       "inv-hard-03",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierHard,
		Unit:     "反比例",
		Text:     "グラフが点 (5, -6) を通る反比例の式を求めなさい。",
		Answer:   "y=-30/x",
		Variants: []string{"y = -30/x", "y=-30÷x"},
		Hints: []string{
			"反比例は y = a/x の形です。",
			"5 × (-6) = -30",
			"よって y = -30/x",
		},
		Chips: []string{"-30", "-6", "5", "a", "x", "y", "=", "×", "÷"},
	},
	{
		ID:       "inv-hard-04",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierHard,
		Unit:     "反比例",
		Text:     "y = 48/x で、x の変域が 4 ≦ x ≦ 12 のとき、y の変域を求めなさい。",
		Answer:   "4≦y≦12",
		Variants: []string{"4 ≦ y ≦ 12", "4<=y<=12"},
		Hints: []string{
			"x = 4 のとき y = 48 ÷ 4 = 12",
			"x = 12 のとき y = 48 ÷ 12 = 4",
			"反比例では x が増えると y は減ります。",
		},
		Chips: []string{"4", "12", "48", "x", "y", "≦", "=", "÷"},
	},
	{
		ID:       "expert-01",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierExpert,
		Unit:     "比例",
		Text:     "兄と弟が同時に家を出発し、同じ道を歩きます。兄は毎分 80m、弟は毎分 60m で歩きます。出発してから x 分後の兄と弟の距離の差を y m とするとき、y を x の式で表しなさい。",
		Answer:   "y=20x",
		Variants: []string{"y = 20x", "y=20*x"},
		Hints: []string{
			"兄が x 分間に歩く距離は 80x m です。",
			"弟が x 分間に歩く距離は 60x m です。",
			"距離の差 = 80x - 60x = 20x",
		},
		Chips: []string{"20", "60", "80", "x", "y", "=", "×", "-"},
	},
	{
		ID:       "expert-02",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierExpert,
		Unit:     "反比例",
		Text:     "ある仕事を完成させるのに、4人で働くと15日かかります。同じ仕事を6人で働くと何日かかりますか。",
		Answer:   "10",
		Variants: []string{"10日", "10 日"},
		Hints: []string{
			"仕事量 = 人数 × 日数 で一定です。",
			"4人 × 15日 = 60（仕事量）",
			"6人 × y日 = 60 より y = 10",
		},
		Chips: []string{"4", "6", "10", "15", "60", "x", "y", "=", "×", "÷"},
	},
	{
		ID:       "expert-03",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierExpert,
		Unit:     "比例",
		Text:     "水槽に毎分 5L ずつ水を入れます。最初に 20L の水が入っていたとき、x 分後の水の量を y L とすると、y を x の式で表しなさい。",
		Answer:   "y=5x+20",
		Variants: []string{"y = 5x + 20", "y=5x+20", "y = 5x+20"},
		Hints: []string{
			"x 分間で入る水の量は 5x L です。",
			"最初から 20L 入っているので、y = 最初の量 + 増えた量",
			"y = 20 + 5x = 5x + 20",
		},
		Chips: []string{"5", "20", "x", "y", "=", "+", "×"},
	},
	{
		ID:       "expert-04",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierExpert,
		Unit:     "反比例",
		Text:     "時速 60km で走ると 2時間かかる道のりがあります。時速 80km で走ると何時間かかりますか。",
		Answer:   "1.5",
		Variants: []string{"1.5時間", "1.5 時間", "3/2", "1時間30分"},
		Hints: []string{
			"道のり = 速さ × 時間 で一定です。",
			"道のり = 60 × 2 = 120km",
			"80 × y = 120 より y = 1.5",
		},
		Chips: []string{"2", "60", "80", "120", "1.5", "x", "y", "=", "×", "÷"},
	},
	{
		ID:       "expert-05",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierExpert,
		Unit:     "比例",
		Text:     "A町からB町まで 180km あります。車が時速 x km で走るときにかかる時間を y 時間とするとき、y を x の式で表しなさい。また、時速 45km で走るとき何時間かかりますか。",
		Answer:   "4",
		Variants: []string{"4時間", "4 時間", "y=180/x,4"},
		Hints: []string{
			"時間 = 道のり ÷ 速さ なので y = 180/x",
			"x = 45 を代入すると y = 180 ÷ 45",
			"y = 4 時間",
		},
		Chips: []string{"4", "45", "180", "x", "y", "=", "÷"},
	},
	{
		ID:       "expert-06",
		Genre:    problem.GenreDirectProportion,
		Tier:     problem.TierExpert,
		Unit:     "反比例",
		Text:     "長さ 240cm のテープを x 人で等しく分けると、1人あたり y cm になります。8人で分けると1人何cm になりますか。",
		Answer:   "30",
		Variants: []string{"30cm", "30 cm"},
		Hints: []string{
			"y = 240/x（反比例の関係）",
			"x = 8 を代入します",
			"y = 240 ÷ 8 = 30cm",
		},
		Chips: []string{"8", "30", "240", "x", "y", "=", "÷"},
	},
}
