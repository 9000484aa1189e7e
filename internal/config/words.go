package config

// Filler words are spoken disfluencies stripped before analysis. Structural
// signal words must not appear here.
func defaultFillerWords() map[string][]string {
	return map[string][]string{
		"en": {
			"uh", "um", "like", "you know", "i mean", "i guess", "basically",
			"literally", "kind of", "sort of", "well", "yeah", "okay", "ok",
			"right", "so yeah", "and stuff", "or something", "or whatever",
		},
		"zh": {
			"呃", "嗯", "啊", "哦", "那个", "就是说", "怎么说呢", "对吧", "是吧", "嗯嗯",
		},
	}
}

func defaultKeywords() map[string][]string {
	return map[string][]string{
		"hook": {
			"imagine", "what if", "here's the thing", "let me tell you",
			"today we're going to", "have you ever", "you won't believe", "the secret is",
			"想象", "如果", "你知道吗", "今天我们要", "秘密",
		},
		"background": {
			"background", "context", "story", "experience", "when i was",
			"a few years ago", "recently", "in the past", "the problem was",
			"背景", "故事", "经历", "几年前", "过去", "问题",
		},
		"corePoint": {
			"the key point", "the main idea", "here's why", "the reason is",
			"most importantly", "the truth is", "actually",
			"核心", "关键", "重点", "原因", "最重要的是", "真相", "实际上",
		},
		"example": {
			"for example", "for instance", "let's take", "case study",
			"such as", "imagine if", "think about",
			"例如", "比如", "举个例子", "案例", "就像", "想象一下",
		},
		"transition": {
			"but", "however", "now", "moving on", "next", "then",
			"so", "therefore", "thus", "in conclusion",
			"但是", "然而", "现在", "接下来", "然后", "所以", "因此", "总之",
		},
		"emotional": {
			"amazing", "incredible", "shocking", "surprising", "exciting",
			"important", "critical", "crucial", "essential",
			"惊人", "不可思议", "震惊", "令人兴奋", "重要", "关键", "至关重要",
		},
		"callToAction": {
			"subscribe", "like", "comment", "share", "follow",
			"click", "check out", "visit", "download", "sign up",
			"订阅", "点赞", "评论", "分享", "关注", "点击", "访问", "下载", "注册",
		},
	}
}

func defaultIntentsEN() map[string]IntentTemplate {
	return map[string]IntentTemplate{
		"hook": {
			Default: "Grabs the viewer's attention and sparks curiosity",
			Rules: []IntentRule{
				{Triggers: []string{"imagine", "想象"}, Intent: "Draws the viewer in with an imagined scenario"},
				{Triggers: []string{"what if", "如果"}, Intent: "Sparks curiosity with a hypothetical question"},
				{Triggers: []string{"secret", "秘密"}, Intent: "Teases a secret or unknown to hold attention"},
			},
		},
		"background": {
			Default: "Provides background information and sets up context",
			Rules: []IntentRule{
				{Triggers: []string{"story", "故事"}, Intent: "Tells a backstory to build an emotional connection"},
				{Triggers: []string{"experience", "经历"}, Intent: "Shares personal experience to build credibility"},
				{Triggers: []string{"problem", "问题"}, Intent: "Frames the problem that the solution will address"},
			},
		},
		"corePoint": {
			Default: "States the core argument or main content",
			Rules: []IntentRule{
				{Triggers: []string{"key", "关键"}, Intent: "Emphasizes the key takeaway"},
				{Triggers: []string{"reason", "原因"}, Intent: "Explains the underlying reason or logic"},
				{Triggers: []string{"truth", "真相"}, Intent: "Reveals the truth behind the topic"},
			},
		},
		"example": {
			Default: "Illustrates the point with a case or example",
			Rules: []IntentRule{
				{Triggers: []string{"case", "案例"}, Intent: "Backs the point with a real case"},
				{Triggers: []string{"instance", "例子"}, Intent: "Gives an example of the core concept"},
			},
		},
		"transition": {
			Default: "Bridges the surrounding sections",
			Rules: []IntentRule{
				{Triggers: []string{"but", "however", "但是"}, Intent: "Pivots to a contrasting view or angle"},
				{Triggers: []string{"next", "moving on", "接下来"}, Intent: "Moves the talk on to the next topic"},
			},
		},
		"emotional": {
			Default: "Amplifies emotion to make the message land",
			Rules: []IntentRule{
				{Triggers: []string{"amazing", "惊人"}, Intent: "Expresses amazement to heighten impact"},
				{Triggers: []string{"important", "重要"}, Intent: "Stresses importance to command attention"},
			},
		},
		"callToAction": {
			Default: "Prompts the viewer to act (subscribe, like, comment)",
			Rules: []IntentRule{
				{Triggers: []string{"subscribe", "订阅"}, Intent: "Asks the viewer to subscribe to the channel"},
				{Triggers: []string{"like", "点赞"}, Intent: "Asks the viewer to like the video"},
				{Triggers: []string{"comment", "评论"}, Intent: "Invites the viewer to comment and engage"},
			},
		},
	}
}

func defaultIntentsZH() map[string]IntentTemplate {
	return map[string]IntentTemplate{
		"hook": {
			Default: "吸引观众注意，激发好奇心",
			Rules: []IntentRule{
				{Triggers: []string{"imagine", "想象"}, Intent: "通过想象场景吸引观众注意"},
				{Triggers: []string{"what if", "如果"}, Intent: "通过假设性问题激发好奇心"},
				{Triggers: []string{"secret", "秘密"}, Intent: "揭示秘密或未知信息吸引观众"},
			},
		},
		"background": {
			Default: "提供背景信息或铺垫上下文",
			Rules: []IntentRule{
				{Triggers: []string{"story", "故事"}, Intent: "讲述背景故事，建立情感连接"},
				{Triggers: []string{"experience", "经历"}, Intent: "分享个人经历，建立可信度"},
				{Triggers: []string{"problem", "问题"}, Intent: "阐述问题背景，引出解决方案"},
			},
		},
		"corePoint": {
			Default: "阐述核心观点或主要内容",
			Rules: []IntentRule{
				{Triggers: []string{"key", "关键"}, Intent: "强调关键要点"},
				{Triggers: []string{"reason", "原因"}, Intent: "解释核心原因或逻辑"},
				{Triggers: []string{"truth", "真相"}, Intent: "揭示事实真相"},
			},
		},
		"example": {
			Default: "通过案例或示例说明观点",
			Rules: []IntentRule{
				{Triggers: []string{"case", "案例"}, Intent: "通过真实案例说明观点"},
				{Triggers: []string{"instance", "例子"}, Intent: "举例说明核心概念"},
			},
		},
		"transition": {
			Default: "承上启下，连接不同段落",
			Rules: []IntentRule{
				{Triggers: []string{"but", "however", "但是"}, Intent: "转折，引出不同观点或角度"},
				{Triggers: []string{"next", "moving on", "接下来"}, Intent: "承上启下，推进到下一话题"},
			},
		},
		"emotional": {
			Default: "强化情绪，增强感染力",
			Rules: []IntentRule{
				{Triggers: []string{"amazing", "惊人"}, Intent: "表达惊叹，强化情绪冲击"},
				{Triggers: []string{"important", "重要"}, Intent: "强调重要性，引起重视"},
			},
		},
		"callToAction": {
			Default: "引导观众采取行动（订阅/点赞/评论等）",
			Rules: []IntentRule{
				{Triggers: []string{"subscribe", "订阅"}, Intent: "引导观众订阅频道"},
				{Triggers: []string{"like", "点赞"}, Intent: "引导观众点赞支持"},
				{Triggers: []string{"comment", "评论"}, Intent: "引导观众留言互动"},
			},
		},
	}
}
