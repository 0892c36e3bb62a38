package catalog

import "github.com/abhisek/mathstudio/internal/problem"

// planeGeometryProblems covers circles, polygons and triangle areas. There
// is no Expert content; Sample serves Hard in its place.
var planeGeometryProblems = []problem.Problem{
	{
		ID:       "geo-easy-01",
		Genre:    problem.GenrePlaneGeometry,
		Tier:     problem.TierEasy,
		Unit:     "平面図形",
		Text:     "半径 5cm の円の周の長さを求めなさい。円周率は π とします。",
		Answer:   "10π",
		Variants: []string{"10 π", "10pi", "10πcm", "10π cm"},
		Hints: []string{
			"円周 = 直径 × π です。",
			"直径は 5 × 2 = 10cm です。",
			"10 × π = 10π",
		},
		Chips: []string{"2", "5", "10", "π", "×"},
	},
	{
		ID:       "geo-easy-02",
		Genre:    problem.GenrePlaneGeometry,
		Tier:     problem.TierEasy,
		Unit:     "平面図形",
		Text:     "半径 3cm の円の面積を求めなさい。円周率は π とします。",
		Answer:   "9π",
		Variants: []string{"9 π", "9pi", "9πcm²", "9π cm²"},
		Hints: []string{
			"円の面積 = 半径 × 半径 × π です。",
			"3 × 3 × π = 9π",
		},
		Chips: []string{"3", "9", "π", "×"},
	},
	{
		ID:       "geo-easy-03",
		Genre:    problem.GenrePlaneGeometry,
		Tier:     problem.TierEasy,
		Unit:     "平面図形",
		Text:     "正三角形の1つの内角は何度ですか。",
		Answer:   "60",
		Variants: []string{"60°", "60度"},
		Hints: []string{
			"三角形の内角の和は 180° です。",
			"正三角形は3つの角がすべて等しいので、180 ÷ 3 を計算します。",
		},
		Chips: []string{"3", "60", "180", "÷", "°"},
	},
	{
		ID:       "geo-easy-04",
		Genre:    problem.GenrePlaneGeometry,
		Tier:     problem.TierEasy,
		Unit:     "平面図形",
		Text:     "底辺 8cm、高さ 5cm の三角形の面積を求めなさい。",
		Answer:   "20",
		Variants: []string{"20cm²", "20 cm²"},
		Hints: []string{
			"三角形の面積 = 底辺 × 高さ ÷ 2 です。",
			"8 × 5 ÷ 2 = 20",
		},
		Chips: []string{"2", "5", "8", "20", "×", "÷"},
	},
	{
		ID:       "geo-normal-01",
		Genre:    problem.GenrePlaneGeometry,
		Tier:     problem.TierNormal,
		Unit:     "平面図形",
		Text:     "正六角形の1つの内角は何度ですか。",
		Answer:   "120",
		Variants: []string{"120°", "120度"},
		Hints: []string{
			"n 角形の内角の和は 180 × (n - 2) です。",
			"六角形では 180 × 4 = 720°",
			"正六角形の1つの内角は 720 ÷ 6 = 120°",
		},
		Chips: []string{"2", "4", "6", "120", "180", "720", "×", "÷"},
	},
	{
		ID:       "geo-normal-02",
		Genre:    problem.GenrePlaneGeometry,
		Tier:     problem.TierNormal,
		Unit:     "平面図形",
		Text:     "直径 12cm の円の面積を求めなさい。円周率は π とします。",
		Answer:   "36π",
		Variants: []string{"36 π", "36pi", "36πcm²", "36π cm²"},
		Hints: []string{
			"半径は直径の半分なので 12 ÷ 2 = 6cm です。",
			"円の面積 = 半径 × 半径 × π",
			"6 × 6 × π = 36π",
		},
		Chips: []string{"2", "6", "12", "36", "π", "×", "÷"},
	},
	{
		ID:       "geo-normal-03",
		Genre:    problem.GenrePlaneGeometry,
		Tier:     problem.TierNormal,
		Unit:     "平面図形",
		Text:     "三角形の2つの内角が 50° と 70° のとき、残りの角は何度ですか。",
		Answer:   "60",
		Variants: []string{"60°", "60度"},
		Hints: []string{
			"三角形の内角の和は 180° です。",
			"180 - 50 - 70 を計算します。",
		},
		Chips: []string{"50", "60", "70", "180", "-"},
	},
	{
		ID:       "geo-normal-04",
		Genre:    problem.GenrePlaneGeometry,
		Tier:     problem.TierNormal,
		Unit:     "平面図形",
		Text:     "1つの外角が 45° の正多角形は正何角形ですか。数で答えなさい。",
		Answer:   "8",
		Variants: []string{"正八角形", "正8角形", "八角形", "8角形"},
		Hints: []string{
			"多角形の外角の和はいつも 360° です。",
			"正多角形では外角がすべて等しいので、360 ÷ 45 を計算します。",
		},
		Chips: []string{"8", "45", "360", "÷"},
	},
	{
		ID:       "geo-hard-01",
		Genre:    problem.GenrePlaneGeometry,
		Tier:     problem.TierHard,
		Unit:     "平面図形",
		Text:     "半径 4cm の円の面積から、1辺 4cm の正方形の面積をひいた差を求めなさい。円周率は π とします。",
		Answer:   "16π-16",
		Variants: []string{"16π - 16", "16pi-16", "(16π-16)cm²", "16(π-1)"},
		Hints: []string{
			"円の面積は 4 × 4 × π = 16π cm²",
			"正方形の面積は 4 × 4 = 16 cm²",
			"差は 16π - 16",
		},
		Chips: []string{"4", "16", "π", "×", "-"},
	},
	{
		ID:       "geo-hard-02",
		Genre:    problem.GenrePlaneGeometry,
		Tier:     problem.TierHard,
		Unit:     "平面図形",
		Text:     "正十二角形の内角の和は何度ですか。",
		Answer:   "1800",
		Variants: []string{"1800°", "1800度"},
		Hints: []string{
			"n 角形の内角の和は 180 × (n - 2) です。",
			"180 × (12 - 2) = 180 × 10",
		},
		Chips: []string{"2", "10", "12", "180", "1800", "×", "-"},
	},
	{
		ID:       "geo-hard-03",
		Genre:    problem.GenrePlaneGeometry,
		Tier:     problem.TierHard,
		Unit:     "平面図形",
		Text:     "直角三角形で、直角をはさむ2辺の長さが 6cm と 8cm のとき、面積を求めなさい。",
		Answer:   "24",
		Variants: []string{"24cm²", "24 cm²"},
		Hints: []string{
			"直角をはさむ2辺は、底辺と高さとして使えます。",
			"6 × 8 ÷ 2 = 24",
		},
		Chips: []string{"2", "6", "8", "24", "×", "÷"},
	},
	{
		ID:       "geo-hard-04",
		Genre:    problem.GenrePlaneGeometry,
		Tier:     problem.TierHard,
		Unit:     "平面図形",
		Text:     "半径 6cm の半円のまわりの長さ（弧と直径の和）を求めなさい。円周率は π とします。",
		Answer:   "6π+12",
		Variants: []string{"6π + 12", "6pi+12", "12+6π", "12 + 6π", "(6π+12)cm"},
		Hints: []string{
			"弧の長さは円周の半分なので 2 × π × 6 ÷ 2 = 6π cm",
			"直径は 6 × 2 = 12cm",
			"あわせて 6π + 12",
		},
		Chips: []string{"2", "6", "12", "π", "×", "÷", "+"},
	},
}

// transformProblems covers translation, reflection and rotation on the
// coordinate plane. There is no Expert content.
var transformProblems = []problem.Problem{
	{
		ID:       "trans-easy-01",
		Genre:    problem.GenreTransform,
		Tier:     problem.TierEasy,
		Unit:     "図形の移動",
		Text:     "点 A(2, 3) を x 軸の正の方向に 4 だけ平行移動した点の座標を求めなさい。",
		Answer:   "(6,3)",
		Variants: []string{"(6, 3)", "6,3", "A(6,3)"},
		Hints: []string{
			"x 軸の方向に平行移動すると、x 座標だけが変わります。",
			"x 座標は 2 + 4 = 6、y 座標は 3 のままです。",
		},
		Chips: []string{"2", "3", "4", "6", "(", ")", ","},
	},
	{
		ID:       "trans-easy-02",
		Genre:    problem.GenreTransform,
		Tier:     problem.TierEasy,
		Unit:     "図形の移動",
		Text:     "点 (3, 5) を x 軸について対称移動した点の座標を求めなさい。",
		Answer:   "(3,-5)",
		Variants: []string{"(3, -5)", "3,-5"},
		Hints: []string{
			"x 軸について対称移動すると、y 座標の符号が変わります。",
			"x 座標は 3 のまま、y 座標は 5 → -5",
		},
		Chips: []string{"3", "5", "-5", "-", "(", ")", ","},
	},
	{
		ID:       "trans-easy-03",
		Genre:    problem.GenreTransform,
		Tier:     problem.TierEasy,
		Unit:     "図形の移動",
		Text:     "点 (-4, 1) を y 軸について対称移動した点の座標を求めなさい。",
		Answer:   "(4,1)",
		Variants: []string{"(4, 1)", "4,1"},
		Hints: []string{
			"y 軸について対称移動すると、x 座標の符号が変わります。",
			"x 座標は -4 → 4、y 座標は 1 のままです。",
		},
		Chips: []string{"1", "4", "-4", "-", "(", ")", ","},
	},
	{
		ID:       "trans-normal-01",
		Genre:    problem.GenreTransform,
		Tier:     problem.TierNormal,
		Unit:     "図形の移動",
		Text:     "点 (2, -3) を原点について対称移動した点の座標を求めなさい。",
		Answer:   "(-2,3)",
		Variants: []string{"(-2, 3)", "-2,3"},
		Hints: []string{
			"原点について対称移動すると、x 座標も y 座標も符号が変わります。",
			"(2, -3) → (-2, 3)",
		},
		Chips: []string{"2", "3", "-2", "-3", "-", "(", ")", ","},
	},
	{
		ID:       "trans-normal-02",
		Genre:    problem.GenreTransform,
		Tier:     problem.TierNormal,
		Unit:     "図形の移動",
		Text:     "点 (1, 2) を x 軸方向に -3、y 軸方向に 5 だけ平行移動した点の座標を求めなさい。",
		Answer:   "(-2,7)",
		Variants: []string{"(-2, 7)", "-2,7"},
		Hints: []string{
			"平行移動では、x 座標と y 座標にそれぞれ移動量を加えます。",
			"x 座標は 1 + (-3) = -2",
			"y 座標は 2 + 5 = 7",
		},
		Chips: []string{"1", "2", "5", "7", "-2", "-3", "+", "(", ")", ","},
	},
	{
		ID:       "trans-normal-03",
		Genre:    problem.GenreTransform,
		Tier:     problem.TierNormal,
		Unit:     "図形の移動",
		Text:     "正方形を対角線の交点を中心に回転移動させます。もとの形にはじめてぴったり重なるのは何度回転させたときですか。",
		Answer:   "90",
		Variants: []string{"90°", "90度"},
		Hints: []string{
			"正方形は4つの頂点が同じ形に並んでいます。",
			"1回転 360° を 4 等分します。360 ÷ 4 = 90",
		},
		Chips: []string{"4", "90", "360", "÷"},
	},
	{
		ID:       "trans-hard-01",
		Genre:    problem.GenreTransform,
		Tier:     problem.TierHard,
		Unit:     "図形の移動",
		Text:     "点 (3, 1) を原点を中心に反時計回りに 90° 回転移動した点の座標を求めなさい。",
		Answer:   "(-1,3)",
		Variants: []string{"(-1, 3)", "-1,3"},
		Hints: []string{
			"原点を中心に反時計回りに 90° 回転すると、(x, y) は (-y, x) に移ります。",
			"x = 3, y = 1 なので (-1, 3)",
		},
		Chips: []string{"1", "3", "-1", "90", "(", ")", ","},
	},
	{
		ID:       "trans-hard-02",
		Genre:    problem.GenreTransform,
		Tier:     problem.TierHard,
		Unit:     "図形の移動",
		Text:     "点 (4, 2) を原点を中心に 180° 回転移動した点の座標を求めなさい。",
		Answer:   "(-4,-2)",
		Variants: []string{"(-4, -2)", "-4,-2"},
		Hints: []string{
			"180° の回転移動は、原点について対称移動するのと同じです。",
			"x 座標も y 座標も符号が変わります。",
		},
		Chips: []string{"2", "4", "-2", "-4", "180", "(", ")", ","},
	},
	{
		ID:       "trans-hard-03",
		Genre:    problem.GenreTransform,
		Tier:     problem.TierHard,
		Unit:     "図形の移動",
		Text:     "点 (2, 5) を直線 y = x について対称移動した点の座標を求めなさい。",
		Answer:   "(5,2)",
		Variants: []string{"(5, 2)", "5,2"},
		Hints: []string{
			"直線 y = x について対称移動すると、x 座標と y 座標が入れかわります。",
			"(2, 5) → (5, 2)",
		},
		Chips: []string{"2", "5", "x", "y", "(", ")", ","},
	},
	{
		ID:       "trans-hard-04",
		Genre:    problem.GenreTransform,
		Tier:     problem.TierHard,
		Unit:     "図形の移動",
		Text:     "正三角形を、3つの頂点から等しい距離にある点を中心に回転移動させます。もとの形にはじめてぴったり重なるのは何度回転させたときですか。",
		Answer:   "120",
		Variants: []string{"120°", "120度"},
		Hints: []string{
			"正三角形は3つの頂点が同じ形に並んでいます。",
			"1回転 360° を 3 等分します。360 ÷ 3 = 120",
		},
		Chips: []string{"3", "120", "360", "÷"},
	},
}
